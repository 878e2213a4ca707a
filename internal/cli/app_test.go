package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/duelometabolico/internal/cli"
	"github.com/vytor/duelometabolico/internal/game"
	"github.com/vytor/duelometabolico/internal/logger"
	"github.com/vytor/duelometabolico/internal/models"
	"github.com/vytor/duelometabolico/internal/repository/memory"
	"github.com/vytor/duelometabolico/internal/services"
	"github.com/vytor/duelometabolico/internal/testutil"
)

func runScript(t *testing.T, cards []models.Card, lines ...string) string {
	t.Helper()
	engine := game.New(game.WithSeed(1), game.WithLogger(testutil.QuietLogger()))
	svc := services.NewSessionService(memory.NewCardRepository(cards), engine)

	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	app := cli.New(svc, in, &out, cli.WithFeedbackTTL(time.Hour))

	ctx := logger.NewContext(context.Background(), testutil.QuietLogger())
	require.NoError(t, app.Run(ctx))
	return out.String()
}

func TestRun_IndividualFocusedGame(t *testing.T) {
	cards := []models.Card{
		testutil.Card("gli-1", "Glicólise", "Glicose"),
		testutil.Card("kre-1", "Ciclo de Krebs", "Citrato"),
	}
	out := runScript(t, cards,
		"1",       // Iniciar Duelo
		"1",       // Individual
		"2",       // Prática Focada
		"2",       // Ciclo de Krebs
		"Ana",     // name
		"errado",  // wrong
		"",        // blank answer
		"/dica",   // hint 2
		"citrato", // correct
		"",        // Ver Resultados
		"2",       // Menu Principal
		"0",       // Sair
	)

	assert.Contains(t, out, "[Ciclo de Krebs]")
	assert.Contains(t, out, "Resposta incorreta. 2 tentativa(s) restante(s).")
	assert.Contains(t, out, "Digite uma resposta antes de continuar.")
	assert.Contains(t, out, "Dica 2 (10 pontos): kre-1 dica 2")
	assert.Contains(t, out, "Correto! +10 pontos")
	assert.Contains(t, out, "💡 Explicação")
	assert.Contains(t, out, "Seus Resultados")
	assert.Contains(t, out, "Ana • Pontos: 10 • Acertos: 1/1 • Precisão: 100%")
	assert.Contains(t, out, "Categoria: Ciclo de Krebs")
	assert.NotContains(t, out, "Vez de:")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "Até a próxima!"))
}

func TestRun_PairGameRejectsDuplicateNames(t *testing.T) {
	cards := []models.Card{
		testutil.Card("gli-1", "Glicólise", "Glicose"),
		testutil.Card("gli-2", "Glicólise", "Glicose"),
	}
	out := runScript(t, cards,
		"1",
		"2", "1", "Ana", "Ana", // duplicate names
		"2", "1", "Ana", "Bruno",
		"glicose", "", // Ana scores 15
		"/dica", "Glicose", "", // Bruno scores 10
		"2",
		"0",
	)

	assert.Contains(t, out, "Os nomes dos jogadores devem ser diferentes.")
	assert.Contains(t, out, "Vez de: Ana")
	assert.Contains(t, out, "Vez de: Bruno")
	assert.Contains(t, out, "Resultado do Duelo")
	assert.Contains(t, out, "🏆 Vencedor: Ana")
	assert.Contains(t, out, "Modo de Jogo: Dupla • Duelo Rápido")
	assert.Contains(t, out, "• Bruno • 10 pontos (dica 2)")
}

func TestRun_QuitGameReturnsHome(t *testing.T) {
	cards := []models.Card{testutil.Card("gli-1", "Glicólise", "Glicose")}
	out := runScript(t, cards,
		"1", "1", "1", "",
		"/sair", "n",
		"/sair", "s",
		"0",
	)

	assert.Equal(t, 2, strings.Count(out, "Tem certeza que deseja sair?"))
	assert.NotContains(t, out, "Seus Resultados")
	assert.Equal(t, 2, strings.Count(out, "🧬 Duelo Metabólico"))
}

func TestRun_StaticScreens(t *testing.T) {
	out := runScript(t, nil, "2", "", "3", "", "9", "0")

	assert.Contains(t, out, "Sistema de Dicas")
	assert.Contains(t, out, "Versão 1.0.0")
	assert.Contains(t, out, "Opção inválida.")
}

func TestRun_EndOfInputExits(t *testing.T) {
	cards := []models.Card{testutil.Card("gli-1", "Glicólise", "Glicose")}
	out := runScript(t, cards, "1", "1")

	assert.Contains(t, out, "Tipo de Jogo")
	assert.Contains(t, out, "Até a próxima!")
}

func TestRun_PlayAgain(t *testing.T) {
	cards := []models.Card{testutil.Card("gli-1", "Glicólise", "Glicose")}
	out := runScript(t, cards,
		"1", "1", "1", "",
		"x", "x", "x", "x", "x", "x", "x", "x", "x", "", // all attempts exhausted
		"1", // Jogar Novamente
		"1", "1", "",
		"glicose", "",
		"2", "0",
	)

	assert.Contains(t, out, "Que pena! A resposta correta era: Glicose")
	assert.Contains(t, out, "Jogador • Pontos: 0 • Acertos: 0/1 • Precisão: 0%")
	assert.Contains(t, out, "Jogador • Pontos: 15 • Acertos: 1/1 • Precisão: 100%")
}
