package cli

import (
	"context"

	"github.com/vytor/duelometabolico/internal/game"
)

var (
	modeLabels = map[game.Mode]string{game.ModeIndividual: "Individual", game.ModePair: "Dupla"}
	typeLabels = map[game.GameType]string{game.TypeQuick: "Duelo Rápido", game.TypeFocused: "Prática Focada"}
)

// results renders the results screen. It returns true when the player wants
// another game.
func (a *App) results(ctx context.Context) (bool, error) {
	res, err := a.svc.Results(ctx)
	if err != nil {
		return false, err
	}
	snap := a.svc.Snapshot(ctx)

	a.println("")
	if res.Pair {
		a.println("Resultado do Duelo")
		if res.Tie {
			a.println("🤝 Empate!")
		} else {
			a.printf("🏆 Vencedor: %s\n", res.Winner)
		}
	} else {
		a.println("Seus Resultados")
	}

	for _, p := range res.Players {
		a.printf("%s • Pontos: %d • Acertos: %d/%d • Precisão: %d%%\n", p.Name, p.Score, p.Correct, p.Total, p.Accuracy)
	}

	a.println("📊 Estatísticas")
	a.printf("Total de Cartas: %d\n", res.TotalCards)
	a.printf("Cartas Completadas: %d\n", len(res.History))
	a.printf("Acertos: %d • Precisão: %d%%\n", res.CorrectAnswers, res.Accuracy)
	a.printf("Modo de Jogo: %s • %s\n", modeLabels[snap.Mode], typeLabels[snap.Type])
	if snap.Category != "" {
		a.printf("Categoria: %s\n", snap.Category)
	}

	a.println("📝 Histórico de Respostas")
	for i, h := range res.History {
		mark := "✗"
		if h.IsCorrect {
			mark = "✓"
		}
		answer := h.UserAnswer
		if answer == "" {
			answer = "Não respondido"
		}
		who := ""
		if res.Pair {
			who = " • " + h.Player
		}
		a.printf("%d. %s %s\n   Sua resposta: %s%s • %d pontos (dica %d)\n", i+1, mark, h.Question, answer, who, h.Points, h.HintsUsed)
	}

	a.println("1. Jogar Novamente")
	a.println("2. Menu Principal")
	for {
		choice, err := a.prompt("> ")
		if err != nil {
			return false, err
		}
		switch choice {
		case "1":
			return true, nil
		case "2":
			a.svc.ResetGame(ctx)
			return false, nil
		}
		a.println("Opção inválida.")
	}
}
