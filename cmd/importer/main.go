// Package main builds the sqlite movie catalog from the IMDb Top 1000 CSV.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/kinomaniac/kinoagent/internal/catalog"
)

func main() {
	csvPath := flag.String("csv", "data/imdb_top_1000.csv", "path to the IMDb Top 1000 CSV")
	dbPath := flag.String("db", "data/imdb_top_1000.db", "path to the sqlite catalog to create")
	flag.Parse()

	records, err := readCSV(*csvPath)
	if err != nil {
		log.Fatalf("failed to read csv: %v", err)
	}

	store, err := catalog.NewStore(*dbPath)
	if err != nil {
		log.Fatalf("failed to open catalog database: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	if err := store.Replace(ctx, records); err != nil {
		log.Fatalf("failed to import: %v", err)
	}

	fmt.Printf("imported %d movies into %s\n", len(records), *dbPath)
}

func readCSV(path string) ([]catalog.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"Series_Title", "Genre", "IMDB_Rating", "Director", "Overview"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	field := func(row []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var records []catalog.Record
	for {
		row, err := reader.Read()
		if err != nil {
			break
		}
		// The dataset has a few non-numeric year cells; keep the record
		// with a zero year rather than dropping it.
		year, _ := strconv.Atoi(field(row, "Released_Year"))
		rating, _ := strconv.ParseFloat(field(row, "IMDB_Rating"), 64)

		var cast []string
		for _, star := range []string{"Star1", "Star2", "Star3", "Star4"} {
			if v := field(row, star); v != "" {
				cast = append(cast, v)
			}
		}

		var genres []string
		for _, g := range strings.Split(field(row, "Genre"), ",") {
			if g = strings.TrimSpace(g); g != "" {
				genres = append(genres, g)
			}
		}

		records = append(records, catalog.Record{
			Title:    field(row, "Series_Title"),
			Year:     year,
			Genres:   genres,
			Director: field(row, "Director"),
			Cast:     cast,
			Rating:   rating,
			Overview: field(row, "Overview"),
		})
	}
	return records, nil
}
