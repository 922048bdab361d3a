// Package extract turns uploaded documents into raw text. A Dispatcher
// routes on the declared file extension to one of three extractors:
// OCR for images (Tesseract via gosseract), page-by-page text extraction
// for PDFs (go-fitz) and a plain read with a Latin-1 fallback for text
// files. Unsupported extensions are rejected before any extractor runs.
package extract
