// internal/historico/registrador.go
package historico

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Registrador grava eventos na linha do tempo. A escrita é melhor esforço:
// uma falha no registro não pode derrubar a operação que o originou, então o
// erro vai para o log e a operação segue.
type Registrador struct {
	Repo *Repository
	Log  *logrus.Logger
}

// NewRegistrador instancia o registrador de eventos.
func NewRegistrador(repo *Repository, log *logrus.Logger) *Registrador {
	return &Registrador{Repo: repo, Log: log}
}

// Registrar grava um evento na linha do tempo do processo.
func (g *Registrador) Registrar(processoID uint, acao, detalhes, usuario string) {
	e := Evento{
		ProcessoID: processoID,
		Acao:       acao,
		Detalhes:   detalhes,
		Usuario:    usuario,
		CriadoEm:   time.Now(),
	}
	if err := g.Repo.Criar(&e); err != nil {
		g.Log.WithError(err).WithFields(logrus.Fields{
			"processoId": processoID,
			"acao":       acao,
		}).Error("falha ao registrar evento de histórico")
	}
}
