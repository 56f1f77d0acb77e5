package caretaker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MyelinBots/catmanager-go/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

/*
MODEL
*/

// Caretaker tallies what one nick did for the cats of a channel.
type Caretaker struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`

	Name    string `gorm:"column:name;type:varchar(100);not null;uniqueIndex:idx_caretaker_scope,priority:1" json:"name"`
	Network string `gorm:"column:network;type:varchar(100);not null;uniqueIndex:idx_caretaker_scope,priority:2" json:"network"`
	Channel string `gorm:"column:channel;type:varchar(100);not null;uniqueIndex:idx_caretaker_scope,priority:3" json:"channel"`

	Spawns int `gorm:"column:spawns;type:int;not null;default:0" json:"spawns"`
	Feeds  int `gorm:"column:feeds;type:int;not null;default:0" json:"feeds"`
	Plays  int `gorm:"column:plays;type:int;not null;default:0" json:"plays"`
	Naps   int `gorm:"column:naps;type:int;not null;default:0" json:"naps"`
	Births int `gorm:"column:births;type:int;not null;default:0" json:"births"`

	LastSeenAt *time.Time `gorm:"column:last_seen_at" json:"last_seen_at,omitempty"`
}

func (Caretaker) TableName() string {
	return "caretaker"
}

// Score ranks caretakers; a kitten is worth more than a meal.
func (c Caretaker) Score() int {
	return c.Feeds + c.Plays + c.Naps + c.Spawns + 3*c.Births
}

const scoreSQL = "(feeds + plays + naps + spawns + 3 * births)"

// Kind is a tallied action. Its value is the column it increments.
type Kind string

const (
	KindSpawn Kind = "spawns"
	KindFeed  Kind = "feeds"
	KindPlay  Kind = "plays"
	KindNap   Kind = "naps"
	KindBirth Kind = "births"
)

var ErrUnknownKind = errors.New("unknown caretaker action")

func (k Kind) Valid() bool {
	switch k {
	case KindSpawn, KindFeed, KindPlay, KindNap, KindBirth:
		return true
	}
	return false
}

func (k Kind) apply(c *Caretaker) {
	switch k {
	case KindSpawn:
		c.Spawns++
	case KindFeed:
		c.Feeds++
	case KindPlay:
		c.Plays++
	case KindNap:
		c.Naps++
	case KindBirth:
		c.Births++
	}
}

/*
REPOSITORY INTERFACE
*/

//go:generate mockgen -source=caretaker_repository.go -destination=../../../mocks/mock_caretaker_repository.go -package=mocks
type CaretakerRepository interface {
	GetCaretaker(ctx context.Context, name, network, channel string) (*Caretaker, error)
	Record(ctx context.Context, name, network, channel string, kind Kind, at time.Time) error
	TopCaretakers(ctx context.Context, network, channel string, limit int) ([]*Caretaker, error)
}

/*
REPOSITORY IMPL
*/

type CaretakerRepositoryImpl struct {
	db *db.DB
}

func NewCaretakerRepository(database *db.DB) CaretakerRepository {
	return &CaretakerRepositoryImpl{db: database}
}

/*
NORMALIZATION
*/

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// normNick also drops channel mode prefixes some clients send with nicks.
func normNick(s string) string { return strings.TrimLeft(norm(s), "~&@%+") }

func normScope(network, channel string) (string, string) {
	return norm(network), norm(channel)
}

func (r *CaretakerRepositoryImpl) GetCaretaker(ctx context.Context, name, network, channel string) (*Caretaker, error) {
	name = normNick(name)
	network, channel = normScope(network, channel)

	var c Caretaker
	err := r.db.DB.WithContext(ctx).
		Where("name = ? AND network = ? AND channel = ?", name, network, channel).
		First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// Record creates the row if needed, then bumps the kind column.
func (r *CaretakerRepositoryImpl) Record(ctx context.Context, name, network, channel string, kind Kind, at time.Time) error {
	if !kind.Valid() {
		return fmt.Errorf("%q: %w", kind, ErrUnknownKind)
	}
	name = normNick(name)
	network, channel = normScope(network, channel)

	return r.db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := Caretaker{Name: name, Network: network, Channel: channel}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}, {Name: "network"}, {Name: "channel"}},
			DoNothing: true,
		}).Create(&row).Error
		if err != nil {
			return err
		}

		return tx.Model(&Caretaker{}).
			Where("name = ? AND network = ? AND channel = ?", name, network, channel).
			UpdateColumns(map[string]any{
				string(kind):   gorm.Expr(string(kind)+" + ?", 1),
				"last_seen_at": at,
				"updated_at":   at,
			}).Error
	})
}

/*
LEADERBOARD
*/

func (r *CaretakerRepositoryImpl) TopCaretakers(ctx context.Context, network, channel string, limit int) ([]*Caretaker, error) {
	network, channel = normScope(network, channel)
	if limit <= 0 {
		limit = 5
	}

	var out []*Caretaker
	if err := r.db.DB.WithContext(ctx).
		Where("network = ? AND channel = ?", network, channel).
		Order(scoreSQL + " DESC").
		Order("name ASC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
