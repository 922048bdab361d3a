package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/wordwand/internal/archive"
	"codeberg.org/snonux/wordwand/internal/cli"
	"codeberg.org/snonux/wordwand/internal/models"
	"codeberg.org/snonux/wordwand/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Handle --archive flag
	if flags.Archive {
		dest, err := archive.ArchiveAudio(flags.AudioDir)
		if err != nil {
			return fmt.Errorf("failed to archive audio: %w", err)
		}
		fmt.Printf("Audio archived to: %s\n", dest)
		return nil
	}

	// Handle --list-models flag
	if flags.ListModels {
		lister := models.NewLister(cli.GetOpenAIKey())
		return lister.ListSpeechModels()
	}

	if flags.BatchFile == "" && len(args) == 0 {
		return cmd.Help()
	}

	// Create processor
	proc, err := processor.NewProcessor(flags)
	if err != nil {
		return err
	}
	defer proc.Close()

	// Handle batch processing
	if flags.BatchFile != "" {
		if err := proc.ProcessBatch(); err != nil {
			return err
		}
	} else {
		// Process single document
		if err := proc.ProcessSingleFile(args[0]); err != nil {
			return err
		}
	}

	if !flags.JSONOutput {
		fmt.Printf("\nDone! Audio saved to: %s\n", flags.AudioDir)
	}
	return nil
}
