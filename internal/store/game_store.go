package store

import (
	"errors"
	"strings"

	"gameface/web/internal/models"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no row matches the given identifier.
	ErrNotFound = errors.New("store: not found")

	// ErrDuplicateName is returned when a game name collides with an
	// existing row. The unique index on the name column raises it; there is
	// no read-before-write check.
	ErrDuplicateName = errors.New("store: duplicate game name")
)

// GameStore is the capability set the handlers need over the games table.
// The persistence mechanism stays swappable behind it.
type GameStore interface {
	Create(game *models.Game) error
	ByID(id uint) (*models.Game, error)
	ByName(name string) (*models.Game, error)
	Search(name string) ([]models.Game, error)
	Update(game *models.Game) error
	Delete(id uint) error
}

type gormGameStore struct {
	db *gorm.DB
}

// NewGameStore returns a GameStore backed by the given GORM connection.
func NewGameStore(db *gorm.DB) GameStore {
	return &gormGameStore{db: db}
}

func (s *gormGameStore) Create(game *models.Game) error {
	if err := s.db.Create(game).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateName
		}
		return err
	}
	return nil
}

func (s *gormGameStore) ByID(id uint) (*models.Game, error) {
	var game models.Game
	if err := s.db.First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &game, nil
}

func (s *gormGameStore) ByName(name string) (*models.Game, error) {
	var game models.Game
	if err := s.db.Where("name = ?", name).First(&game).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &game, nil
}

// Search lists games whose name contains the given text case-insensitively,
// ordered by name ascending. An empty search lists the whole catalogue.
func (s *gormGameStore) Search(name string) ([]models.Game, error) {
	query := s.db.Order("name ASC")
	if name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}

	var games []models.Game
	if err := query.Find(&games).Error; err != nil {
		return nil, err
	}
	return games, nil
}

func (s *gormGameStore) Update(game *models.Game) error {
	if err := s.db.Save(game).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateName
		}
		return err
	}
	return nil
}

func (s *gormGameStore) Delete(id uint) error {
	result := s.db.Unscoped().Delete(&models.Game{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
