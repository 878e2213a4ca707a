package cli

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/vytor/duelometabolico/internal/errors"
	"github.com/vytor/duelometabolico/internal/game"
	"github.com/vytor/duelometabolico/internal/logger"
	"github.com/vytor/duelometabolico/internal/models"
)

const (
	cmdHint = "/dica"
	cmdQuit = "/sair"
)

// play runs the game screen. It returns true once the last card is done and
// false when the player abandons the game.
func (a *App) play(ctx context.Context) (bool, error) {
	log := logger.FromContext(ctx)

	for {
		snap := a.svc.Snapshot(ctx)
		if snap.GameFinished {
			return true, nil
		}
		a.renderCard(snap)

		if snap.ShowExplanation {
			if err := a.explain(ctx, snap); err != nil {
				return false, err
			}
			continue
		}

		line, err := a.prompt("Sua resposta (" + cmdHint + ", " + cmdQuit + "): ")
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case cmdQuit:
			leave, err := a.confirmQuit()
			if err != nil {
				return false, err
			}
			if leave {
				log.Info("game abandoned: session=%s", snap.SessionID)
				a.svc.ResetGame(ctx)
				return false, nil
			}
			continue
		case cmdHint:
			_, err = a.svc.RequestHint(ctx)
		default:
			_, err = a.svc.SubmitAnswer(ctx, line)
		}

		switch {
		case err == nil:
		case stderrors.Is(err, errors.ErrValidation):
			a.warn("Digite uma resposta antes de continuar.")
		case stderrors.Is(err, errors.ErrInvalidState):
			a.println("Não há mais dicas para esta carta.")
		default:
			return false, err
		}
		a.scheduleFeedback(ctx)
	}
}

func (a *App) renderCard(snap game.Snapshot) {
	card, ok := snap.CurrentCard()
	if !ok {
		return
	}
	player := snap.CurrentPlayer()

	a.println("")
	a.printf("Carta %s • Pontos: %d\n", snap.Progress(), snap.TotalScore(player))
	if snap.Mode == game.ModePair {
		a.printf("Vez de: %s\n", player)
	}
	a.printf("[%s]\n", card.Category)

	for level := 1; level <= snap.CurrentHintLevel; level++ {
		h := card.Hint(level)
		a.printf("Dica %d (%d pontos): %s\n", level, h.Points, h.Text)
	}
	if !snap.ShowExplanation {
		a.printf("Tentativas restantes: %d\n", snap.RemainingAttempts)
	}
	if fb := snap.Feedback; fb != nil {
		a.println(feedbackLine(fb))
	}
}

func feedbackLine(fb *models.Feedback) string {
	if fb.Kind == models.FeedbackSuccess {
		return "✅ " + fb.Message
	}
	return "❌ " + fb.Message
}

// explain shows the explanation of a resolved card and moves to the next one.
func (a *App) explain(ctx context.Context, snap game.Snapshot) error {
	card, _ := snap.CurrentCard()
	a.println("")
	a.println("💡 Explicação")
	a.printf("Resposta: %s\n", card.Answer)
	a.println(card.Explanation)

	label := "Próxima Carta (Enter) "
	if snap.CurrentCardIndex+1 >= snap.TotalCards() {
		label = "Ver Resultados (Enter) "
	}
	if _, err := a.prompt(label); err != nil {
		return err
	}
	a.expirer.Cancel()
	_, err := a.svc.AdvanceTurn(ctx)
	return err
}

func (a *App) confirmQuit() (bool, error) {
	a.println("Sair do Jogo")
	line, err := a.prompt("Tem certeza que deseja sair? Seu progresso será perdido. (s/n) ")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(line, "s") || strings.EqualFold(line, "sim"), nil
}

func (a *App) scheduleFeedback(ctx context.Context) {
	if fb := a.svc.Snapshot(ctx).Feedback; fb != nil {
		a.expirer.Schedule(fb.Seq)
	}
}
