// internal/notificacao/webhook.go
package notificacao

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// AvisoParcela é o payload enviado ao webhook de cobrança de parcelas.
type AvisoParcela struct {
	ProcessoID     uint      `json:"processoId"`
	ProcessoTitulo string    `json:"processoTitulo"`
	ClienteNome    string    `json:"clienteNome"`
	NumeroParcela  int       `json:"numeroParcela"`
	Valor          string    `json:"valor"`
	DataVencimento time.Time `json:"dataVencimento"`
}

// Notificador envia avisos de parcela para um webhook externo. O envio é
// melhor esforço: falhas são registradas e devolvidas ao chamador, mas nunca
// alteram o estado do razão.
type Notificador struct {
	URL     string
	Cliente *http.Client
	Log     *logrus.Logger
}

// NewNotificador instancia o notificador com timeout limitado.
func NewNotificador(url string, log *logrus.Logger) *Notificador {
	return &Notificador{
		URL:     url,
		Cliente: &http.Client{Timeout: 10 * time.Second},
		Log:     log,
	}
}

// Configurado informa se há um webhook de destino.
func (n *Notificador) Configurado() bool { return n.URL != "" }

// AvisarParcela envia o aviso ao webhook configurado.
func (n *Notificador) AvisarParcela(ctx context.Context, aviso AvisoParcela) error {
	if !n.Configurado() {
		return fmt.Errorf("webhook de notificação não configurado")
	}

	body, err := json.Marshal(aviso)
	if err != nil {
		return fmt.Errorf("erro ao serializar aviso: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("erro ao montar requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.Cliente.Do(req)
	if err != nil {
		n.Log.WithError(err).WithField("processoId", aviso.ProcessoID).
			Error("falha ao enviar aviso de parcela")
		return fmt.Errorf("erro ao enviar aviso: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		n.Log.WithFields(logrus.Fields{
			"processoId": aviso.ProcessoID,
			"status":     resp.StatusCode,
		}).Error("webhook de parcela respondeu com erro")
		return fmt.Errorf("webhook respondeu %d", resp.StatusCode)
	}
	return nil
}
