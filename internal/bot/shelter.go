package bot

import (
	"fmt"

	"github.com/MyelinBots/catmanager-go/config"
	"github.com/MyelinBots/catmanager-go/internal/db"
	"github.com/MyelinBots/catmanager-go/internal/db/repositories/caretaker"
	"github.com/MyelinBots/catmanager-go/internal/pantry"
	"github.com/MyelinBots/catmanager-go/internal/roster"
	"github.com/MyelinBots/catmanager-go/internal/services/avatar"
	"github.com/MyelinBots/catmanager-go/internal/services/catmanager"
)

// Shelter bundles the state every front end shares.
type Shelter struct {
	Config     config.Config
	Roster     *roster.Roster
	Pantry     *pantry.Pantry
	Caretakers caretaker.CaretakerRepository
	Avatars    *avatar.Picker

	database *db.DB
}

// NewShelter opens the caretaker store, takes in the starting cats and
// stocks the pantry.
func NewShelter(cfg config.Config) (*Shelter, error) {
	s := &Shelter{
		Config:  cfg,
		Roster:  roster.New(roster.Options{MaxCats: cfg.ShelterConfig.MaxCats}),
		Pantry:  pantry.New(),
		Avatars: avatar.NewPicker(cfg.ShelterConfig.AvatarDir, nil),
	}

	if cfg.DBConfig.Enabled {
		database, err := db.NewDatabase(cfg.DBConfig)
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(); err != nil {
			_ = database.Close()
			return nil, err
		}
		s.database = database
		s.Caretakers = caretaker.NewCaretakerRepository(database)
		fmt.Printf("Caretaker tallies stored in %s@%s/%s\n", cfg.DBConfig.User, cfg.DBConfig.Host, cfg.DBConfig.DataBase)
	} else {
		s.Caretakers = caretaker.NewMemoryRepository()
	}

	if n := min(cfg.ShelterConfig.StartingCats, s.Roster.Cap()); n > 0 {
		if _, err := s.Roster.SpawnBatch(n); err != nil {
			s.Close()
			return nil, fmt.Errorf("starting cats: %w", err)
		}
	}
	s.Pantry.Fill(cfg.ShelterConfig.PantryRations)
	return s, nil
}

func (s *Shelter) Manager(network, channel string, notify func(string)) *catmanager.CatManagerImpl {
	return catmanager.NewCatManager(catmanager.Options{
		Roster:       s.Roster,
		Pantry:       s.Pantry,
		Caretakers:   s.Caretakers,
		Avatars:      s.Avatars,
		Network:      network,
		Channel:      channel,
		TickInterval: s.Config.ShelterConfig.TickInterval(),
		Notify:       notify,
	})
}

func (s *Shelter) Close() error {
	if s.database == nil {
		return nil
	}
	return s.database.Close()
}
