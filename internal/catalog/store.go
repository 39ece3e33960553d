package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type movieModel struct {
	ID       int `gorm:"primaryKey"`
	Title    string
	Year     int
	Genre    string
	Rating   float64
	Director string
	Star1    string
	Star2    string
	Star3    string
	Star4    string
	Overview string
}

func (movieModel) TableName() string {
	return "movies"
}

// Store accesses the sqlite movie catalog built by cmd/importer.
type Store struct {
	db *gorm.DB
}

// NewStore opens the sqlite catalog at path.
func NewStore(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}
	return &Store{db: db}, nil
}

// DB exposes the underlying gorm handle.
func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) Close() {
	if s.db == nil {
		return
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return
	}
	_ = sqlDB.Close()
}

// Migrate creates the movies table. Used by the importer only.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&movieModel{}); err != nil {
		return fmt.Errorf("failed to migrate movies table: %w", err)
	}
	return nil
}

// Replace wipes the table and inserts records in the given order. Used by the
// importer only; the order defines the dataset order the resolver ties on.
func (s *Store) Replace(ctx context.Context, records []Record) error {
	if err := s.db.WithContext(ctx).Where("1 = 1").Delete(&movieModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear movies table: %w", err)
	}
	models := make([]movieModel, 0, len(records))
	for _, r := range records {
		models = append(models, movieToModel(r))
	}
	if len(models) == 0 {
		return nil
	}
	if err := s.db.WithContext(ctx).CreateInBatches(models, 200).Error; err != nil {
		return fmt.Errorf("failed to insert movies: %w", err)
	}
	return nil
}

// Load enumerates the full catalog in stable dataset order.
func (s *Store) Load(ctx context.Context) ([]Record, error) {
	var models []movieModel
	if err := s.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	records := make([]Record, 0, len(models))
	for _, m := range models {
		records = append(records, movieFromModel(m))
	}
	return records, nil
}

// ByActor returns movies featuring the actor, best rated first.
func (s *Store) ByActor(ctx context.Context, actor string, limit int) ([]Record, error) {
	pattern := likePattern(actor)
	var models []movieModel
	if err := s.db.WithContext(ctx).
		Where("lower(star1) LIKE ? OR lower(star2) LIKE ? OR lower(star3) LIKE ? OR lower(star4) LIKE ?",
			pattern, pattern, pattern, pattern).
		Order("rating DESC").
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to query movies by actor: %w", err)
	}
	return recordsFromModels(models), nil
}

// ByGenre returns the top rated movies of a genre.
func (s *Store) ByGenre(ctx context.Context, genre string, limit int) ([]Record, error) {
	var models []movieModel
	if err := s.db.WithContext(ctx).
		Where("lower(genre) LIKE ?", likePattern(genre)).
		Order("rating DESC").
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to query movies by genre: %w", err)
	}
	return recordsFromModels(models), nil
}

// ByKeyword returns movies whose overview mentions the keyword.
func (s *Store) ByKeyword(ctx context.Context, keyword string, limit int) ([]Record, error) {
	var models []movieModel
	if err := s.db.WithContext(ctx).
		Where("lower(overview) LIKE ?", likePattern(keyword)).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to query movies by keyword: %w", err)
	}
	return recordsFromModels(models), nil
}

func likePattern(s string) string {
	return "%" + strings.ToLower(strings.TrimSpace(s)) + "%"
}

func recordsFromModels(models []movieModel) []Record {
	records := make([]Record, 0, len(models))
	for _, m := range models {
		records = append(records, movieFromModel(m))
	}
	return records
}

func movieFromModel(m movieModel) Record {
	return Record{
		Title:    m.Title,
		Year:     m.Year,
		Genres:   splitGenres(m.Genre),
		Director: m.Director,
		Cast:     joinCast(m.Star1, m.Star2, m.Star3, m.Star4),
		Rating:   m.Rating,
		Overview: m.Overview,
	}
}

func movieToModel(r Record) movieModel {
	m := movieModel{
		Title:    r.Title,
		Year:     r.Year,
		Genre:    strings.Join(r.Genres, ", "),
		Rating:   r.Rating,
		Director: r.Director,
		Overview: r.Overview,
	}
	stars := []*string{&m.Star1, &m.Star2, &m.Star3, &m.Star4}
	for i, actor := range r.Cast {
		if i >= len(stars) {
			break
		}
		*stars[i] = actor
	}
	return m
}
