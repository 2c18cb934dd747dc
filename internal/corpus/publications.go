package corpus

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/orbitalbio/litscan/internal/models"
)

// LoadPublications reads the publications list (the title + link table that
// seeds the download stage) from a .csv or .xlsx file. The first row is
// treated as a header; rows missing a title are skipped.
func LoadPublications(path string) ([]models.Publication, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read publications file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return parseXLSX(content)
	default:
		return parseCSV(content)
	}
}

func parseCSV(content []byte) ([]models.Publication, error) {
	r := csv.NewReader(bytes.NewReader(content))
	r.FieldsPerRecord = -1
	var (
		pubs  []models.Publication
		first = true
	)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse publications csv: %w", err)
		}
		if first {
			first = false
			continue
		}
		if pub, ok := rowToPublication(row); ok {
			pubs = append(pubs, pub)
		}
	}
	return pubs, nil
}

func parseXLSX(content []byte) ([]models.Publication, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("open publications xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("publications xlsx has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read publications sheet: %w", err)
	}
	var pubs []models.Publication
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if pub, ok := rowToPublication(row); ok {
			pubs = append(pubs, pub)
		}
	}
	return pubs, nil
}

func rowToPublication(row []string) (models.Publication, bool) {
	var pub models.Publication
	if len(row) > 0 {
		pub.Title = strings.TrimSpace(row[0])
	}
	if len(row) > 1 {
		pub.Link = strings.TrimSpace(row[1])
	}
	return pub, pub.Title != ""
}
