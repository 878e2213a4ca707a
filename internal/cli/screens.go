package cli

const howToPlay = `
Como Jogar

🎯 Objetivo do Jogo
Teste seus conhecimentos sobre metabolismo e sistemas biológicos através de
um quiz com dicas progressivas. Quanto menos dicas usar, mais pontos você ganha!

🎮 Modos de Jogo
• Modo Individual: Jogue sozinho e teste seus conhecimentos
• Duelo Rápido: 10 cartas aleatórias para uma partida rápida
• Prática Focada: Escolha um sistema específico para estudar
• Modo Dupla: Jogue com um amigo no sistema "Passa e Joga"

💡 Sistema de Dicas
Cada carta possui 3 dicas progressivas:
• Dica 1: Mais difícil - 15 pontos
• Dica 2: Média dificuldade - 10 pontos
• Dica 3: Mais fácil - 5 pontos
Você tem 3 tentativas por dica antes de passar para a próxima.

🎯 Como Jogar
1. Leia a primeira dica com atenção
2. Digite sua resposta e pressione Enter
3. Se errar, tente novamente ou digite /dica para uma nova dica
4. Após acertar ou esgotar as dicas, leia a explicação educacional
5. Continue para a próxima carta
Digite /sair a qualquer momento para abandonar a partida.

📊 Pontuação
• Acertou na 1ª dica: 15 pontos
• Acertou na 2ª dica: 10 pontos
• Acertou na 3ª dica: 5 pontos
• Não acertou: 0 pontos
No modo dupla, os jogadores alternam turnos e competem pela maior pontuação.`

const credits = `
🧬 Duelo Metabólico
Versão 1.0.0

🎯 Nossa Missão
Sistema de dicas progressivas baseado em técnicas de aprendizagem ativa,
desenvolvido para estudantes de saúde.

📚 Conteúdo Educacional
Baseado em literatura científica reconhecida e diretrizes acadêmicas atuais.

🔬 Validação Científica
Todo conteúdo foi revisado por especialistas em bioquímica e metabolismo.

Desenvolvido com ❤️ para a educação em saúde`
