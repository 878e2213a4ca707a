// Package cli is the terminal front end. It reads commands line by line and
// renders every screen as plain text.
package cli

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/vytor/duelometabolico/internal/errors"
	"github.com/vytor/duelometabolico/internal/feedback"
	"github.com/vytor/duelometabolico/internal/logger"
	"github.com/vytor/duelometabolico/internal/services"
)

// errQuit unwinds every screen back to Run when input ends or the player exits.
var errQuit = stderrors.New("quit")

// Option configures an App.
type Option func(*App)

// WithFeedbackTTL sets how long a feedback message stays on screen.
func WithFeedbackTTL(ttl time.Duration) Option {
	return func(a *App) {
		a.feedbackTTL = ttl
	}
}

// App runs the menus and the game loop against a SessionService.
type App struct {
	svc         services.SessionService
	in          *bufio.Reader
	out         io.Writer
	feedbackTTL time.Duration
	expirer     *feedback.Expirer
}

// New creates an App reading from in and writing to out.
func New(svc services.SessionService, in io.Reader, out io.Writer, opts ...Option) *App {
	a := &App{
		svc:         svc,
		in:          bufio.NewReader(in),
		out:         out,
		feedbackTTL: feedback.DefaultTTL,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run shows the home menu until the player leaves or input ends.
func (a *App) Run(ctx context.Context) error {
	log := logger.FromContext(ctx).WithPrefix("cli")
	ctx = logger.NewContext(ctx, log)

	a.expirer = feedback.NewExpirer(a.feedbackTTL, func(seq uint64) {
		a.svc.ClearFeedback(ctx, seq)
	})
	defer a.expirer.Stop()

	log.Info("terminal session started")
	for {
		err := a.home(ctx)
		switch {
		case stderrors.Is(err, errQuit):
			log.Info("terminal session ended")
			a.println("Até a próxima!")
			return nil
		case err != nil:
			log.Error("terminal session failed: %v", err)
			return err
		}
	}
}

func (a *App) home(ctx context.Context) error {
	a.println("")
	a.println("🧬 Duelo Metabólico")
	a.println("1. Iniciar Duelo - Comece um novo jogo")
	a.println("2. Como Jogar - Aprenda as regras")
	a.println("3. Créditos - Sobre o projeto")
	a.println("0. Sair")

	choice, err := a.prompt("Escolha uma opção: ")
	if err != nil {
		return err
	}
	switch choice {
	case "1":
		return a.duel(ctx)
	case "2":
		a.println(howToPlay)
		_, err := a.prompt("Entendi, Vamos Jogar! (Enter) ")
		return err
	case "3":
		a.println(credits)
		_, err := a.prompt("Voltar ao Menu (Enter) ")
		return err
	case "0":
		return errQuit
	default:
		a.println("Opção inválida.")
		return nil
	}
}

// duel runs configure, play and results until the player goes back home.
func (a *App) duel(ctx context.Context) error {
	for {
		started, err := a.configure(ctx)
		if err != nil || !started {
			return err
		}
		finished, err := a.play(ctx)
		if err != nil || !finished {
			return err
		}
		again, err := a.results(ctx)
		if err != nil || !again {
			return err
		}
	}
}

func (a *App) prompt(label string) (string, error) {
	fmt.Fprint(a.out, label)
	line, err := a.in.ReadString('\n')
	if err != nil {
		if stderrors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return strings.TrimSpace(line), nil
		}
		if stderrors.Is(err, io.EOF) {
			return "", errQuit
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) warn(msg string) {
	a.printf("⚠️  Atenção: %s\n", msg)
}

// playerMessage extracts the text meant for the player from a command error.
func playerMessage(err error) string {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
