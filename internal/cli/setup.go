package cli

import (
	"context"
	stderrors "errors"
	"strconv"

	"github.com/vytor/duelometabolico/internal/errors"
	"github.com/vytor/duelometabolico/internal/game"
)

// configure walks through the mode selection screen. It returns false when
// the player goes back to the home menu.
func (a *App) configure(ctx context.Context) (bool, error) {
	a.svc.ResetGame(ctx)

	for {
		a.println("")
		a.println("Configurar Jogo")

		mode, back, err := a.choose("🎮 Modo de Jogo", []string{"👤 Individual", "👥 Dupla"})
		if err != nil || back {
			return false, err
		}
		modes := []game.Mode{game.ModeIndividual, game.ModePair}
		if _, err := a.svc.SetMode(ctx, modes[mode]); err != nil {
			return false, err
		}

		typ, back, err := a.choose("⚡ Tipo de Jogo", []string{"🚀 Duelo Rápido", "🎯 Prática Focada"})
		if err != nil || back {
			return false, err
		}
		types := []game.GameType{game.TypeQuick, game.TypeFocused}
		if _, err := a.svc.SetType(ctx, types[typ]); err != nil {
			return false, err
		}

		category := ""
		if types[typ] == game.TypeFocused {
			cats, err := a.svc.Categories(ctx)
			if err != nil {
				return false, err
			}
			idx, back, err := a.choose("📚 Categoria", cats)
			if err != nil || back {
				return false, err
			}
			category = cats[idx]
		}
		if _, err := a.svc.SetCategory(ctx, category); err != nil {
			return false, err
		}

		var names []string
		if modes[mode] == game.ModePair {
			a.println("✏️ Nomes dos Jogadores")
			for i := 1; i <= 2; i++ {
				name, err := a.prompt("Jogador " + strconv.Itoa(i) + ": ")
				if err != nil {
					return false, err
				}
				names = append(names, name)
			}
		} else {
			name, err := a.prompt("Seu nome (Enter para " + strconv.Quote(game.DefaultPlayerName) + "): ")
			if err != nil {
				return false, err
			}
			if name != "" {
				names = []string{name}
			}
		}
		if _, err := a.svc.SetPlayers(ctx, names); err != nil {
			return false, err
		}

		_, err = a.svc.StartGame(ctx)
		if err == nil {
			return true, nil
		}
		if !stderrors.Is(err, errors.ErrInvalidConfiguration) {
			return false, err
		}
		a.warn(playerMessage(err))
	}
}

// choose lists options numbered from 1 and returns the zero-based pick.
// Answering 0 goes back.
func (a *App) choose(title string, options []string) (int, bool, error) {
	for {
		a.println(title)
		for i, opt := range options {
			a.printf("%d. %s\n", i+1, opt)
		}
		a.println("0. Voltar")

		line, err := a.prompt("> ")
		if err != nil {
			return 0, false, err
		}
		n, convErr := strconv.Atoi(line)
		switch {
		case convErr == nil && n == 0:
			return 0, true, nil
		case convErr == nil && n >= 1 && n <= len(options):
			return n - 1, false, nil
		}
		a.println("Opção inválida.")
	}
}
