package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Aellun/exam-wishes-app/internal/config"
	"github.com/Aellun/exam-wishes-app/internal/repository"
	"github.com/Aellun/exam-wishes-app/internal/service"
	"github.com/Aellun/exam-wishes-app/internal/sheets"
)

// Exporta el tablón completo a good_luck_messages.{json,pdf} sin pasar por
// el servidor HTTP.
func main() {
	ctx := context.Background()

	outDir := flag.String("out", ".", "directory for the exported files")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.SpreadsheetID == "" {
		log.Fatal("SPREADSHEET_ID is required")
	}

	logger := zap.NewExample()
	defer logger.Sync()

	client, err := sheets.NewService(ctx, cfg.GoogleCredentialsJSON, cfg.GoogleCredentialsFile)
	if err != nil {
		log.Fatalf("sheets client: %v", err)
	}

	repo := repository.NewSheetsWishRepository(client, cfg.SpreadsheetID, cfg.SheetName, cfg.SheetsTimeout)
	wishSvc := service.NewWishService(logger, repo)
	exportSvc := service.NewExportService()

	wishes, err := wishSvc.ListAll(ctx)
	if err != nil {
		log.Fatalf("read wishes: %v", err)
	}

	jsonBytes, err := exportSvc.ExportJSON(wishes)
	if err != nil {
		log.Fatalf("export json: %v", err)
	}
	jsonPath := filepath.Join(*outDir, "good_luck_messages.json")
	if err := os.WriteFile(jsonPath, jsonBytes, 0o644); err != nil {
		log.Fatalf("write %s: %v", jsonPath, err)
	}

	pdfBytes, err := exportSvc.ExportPDF(wishes)
	if err != nil {
		log.Fatalf("export pdf: %v", err)
	}
	pdfPath := filepath.Join(*outDir, "good_luck_messages.pdf")
	if err := os.WriteFile(pdfPath, pdfBytes, 0o644); err != nil {
		log.Fatalf("write %s: %v", pdfPath, err)
	}

	fmt.Printf("exported %d wishes to %s\n", len(wishes), *outDir)
}
