package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/boardgame-core/internal/entity"
)

var ErrUnknownPlayerName = errors.New("unknown player name")

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Matches   int       `yaml:"matches" env:"MATCHES" env-default:"1"`
	Othello   Othello   `yaml:"othello"`
	TicTacToe TicTacToe `yaml:"tictactoe"`
}

type Othello struct {
	Rows        int    `yaml:"rows" env:"OTHELLO_ROWS" env-default:"8"`
	Cols        int    `yaml:"cols" env:"OTHELLO_COLS" env-default:"8"`
	FirstPlayer string `yaml:"first-player" env:"OTHELLO_FIRST_PLAYER" env-default:"black"`
}

type TicTacToe struct {
	FirstPlayer string `yaml:"first-player" env:"TICTACTOE_FIRST_PLAYER" env-default:"X"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Othello) First() (entity.Mark, error) {
	return ParsePlayer(that.FirstPlayer)
}

func (that *TicTacToe) First() (entity.Mark, error) {
	return ParsePlayer(that.FirstPlayer)
}

// ParsePlayer accepts the mark letters as well as the othello colour names.
func ParsePlayer(name string) (entity.Mark, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "x", "a", "black":
		return entity.PlayerA, nil
	case "o", "b", "white":
		return entity.PlayerB, nil
	default:
		return entity.EmptyCell, fmt.Errorf("%w: %q", ErrUnknownPlayerName, name)
	}
}
