package game

import (
	"strings"

	"github.com/vytor/duelometabolico/internal/errors"
)

const (
	// QuickDeckSize is the number of cards sampled for a quick duel.
	QuickDeckSize = 10
	// AttemptsPerHint is the number of submissions allowed at each hint level.
	AttemptsPerHint = 3
	// DefaultPlayerName names the implicit player of an individual game.
	DefaultPlayerName = "Jogador"
)

// Mode selects single-player or pass-and-play.
type Mode string

const (
	ModeUnset      Mode = ""
	ModeIndividual Mode = "individual"
	ModePair       Mode = "dupla"
)

// GameType selects how the deck is built.
type GameType string

const (
	TypeUnset   GameType = ""
	TypeQuick   GameType = "rapido"
	TypeFocused GameType = "focado"
)

// Phase is the coarse lifecycle state of an engine.
type Phase string

const (
	PhaseUnconfigured Phase = "unconfigured"
	PhaseConfiguring  Phase = "configuring"
	PhaseInProgress   Phase = "in_progress"
	PhaseFinished     Phase = "finished"
)

// Setup is the permissive staging area filled by the Set* commands.
// Nothing here is validated until StartGame.
type Setup struct {
	Mode     Mode
	Type     GameType
	Category string
	Players  []string
}

func (s Setup) clone() Setup {
	s.Players = append([]string(nil), s.Players...)
	return s
}

// Player-facing reasons for rejected configurations.
const (
	reasonModeAndType  = "Selecione o modo e tipo de jogo."
	reasonCategory     = "Selecione uma categoria para a prática focada."
	reasonPairNames    = "Digite os nomes dos dois jogadores."
	reasonDistinctName = "Os nomes dos jogadores devem ser diferentes."
	reasonEmptyDeck    = "Nenhuma carta disponível para esta configuração."
)

// roster is the tagged player set of a validated configuration.
type roster interface {
	mode() Mode
	names() []string
}

type individual struct{ name string }

func (individual) mode() Mode        { return ModeIndividual }
func (r individual) names() []string { return []string{r.name} }

type pair struct{ first, second string }

func (pair) mode() Mode        { return ModePair }
func (r pair) names() []string { return []string{r.first, r.second} }

// Configuration is a validated game setup. It can only be built through
// NewIndividualConfig or NewPairConfig.
type Configuration struct {
	gameType GameType
	category string
	players  roster
}

func (c Configuration) Mode() Mode {
	if c.players == nil {
		return ModeUnset
	}
	return c.players.mode()
}

func (c Configuration) Type() GameType  { return c.gameType }
func (c Configuration) Category() string { return c.category }

// Players returns the ordered player names.
func (c Configuration) Players() []string {
	if c.players == nil {
		return nil
	}
	return c.players.names()
}

func validateType(t GameType, category string) (string, error) {
	switch t {
	case TypeQuick:
		return strings.TrimSpace(category), nil
	case TypeFocused:
		category = strings.TrimSpace(category)
		if category == "" {
			return "", errors.NewInvalidConfigurationError(reasonCategory)
		}
		return category, nil
	default:
		return "", errors.NewInvalidConfigurationError(reasonModeAndType)
	}
}

// NewIndividualConfig builds a single-player configuration. A blank name
// falls back to DefaultPlayerName.
func NewIndividualConfig(name string, t GameType, category string) (Configuration, error) {
	category, err := validateType(t, category)
	if err != nil {
		return Configuration{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultPlayerName
	}
	return Configuration{gameType: t, category: category, players: individual{name: name}}, nil
}

// NewPairConfig builds a pass-and-play configuration for two distinct, non-blank names.
func NewPairConfig(first, second string, t GameType, category string) (Configuration, error) {
	category, err := validateType(t, category)
	if err != nil {
		return Configuration{}, err
	}
	first, second = strings.TrimSpace(first), strings.TrimSpace(second)
	if first == "" || second == "" {
		return Configuration{}, errors.NewInvalidConfigurationError(reasonPairNames)
	}
	if first == second {
		return Configuration{}, errors.NewInvalidConfigurationError(reasonDistinctName)
	}
	return Configuration{gameType: t, category: category, players: pair{first: first, second: second}}, nil
}

// configure turns the staged setup into a Configuration.
func (s Setup) configure(defaultName string) (Configuration, error) {
	switch s.Mode {
	case ModeIndividual:
		name := defaultName
		var named []string
		for _, p := range s.Players {
			if p = strings.TrimSpace(p); p != "" {
				named = append(named, p)
			}
		}
		if len(named) == 1 {
			name = named[0]
		}
		return NewIndividualConfig(name, s.Type, s.Category)
	case ModePair:
		if len(s.Players) != 2 {
			return Configuration{}, errors.NewInvalidConfigurationError(reasonPairNames)
		}
		return NewPairConfig(s.Players[0], s.Players[1], s.Type, s.Category)
	default:
		return Configuration{}, errors.NewInvalidConfigurationError(reasonModeAndType)
	}
}
