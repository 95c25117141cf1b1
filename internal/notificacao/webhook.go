package notificacao

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/KromaEnergia/api-vendas/internal/models"
	"go.uber.org/zap"
)

const (
	EventoOportunidadeFechada = "oportunidade.fechada"
	EventoOportunidadePerdida = "oportunidade.perdida"
	EventoMetaEmRisco         = "meta.em_risco"
)

// Evento é o corpo enviado ao webhook.
type Evento struct {
	Tipo       string         `json:"tipo"`
	Mensagem   string         `json:"mensagem"`
	VendedorID uint           `json:"vendedorId,omitempty"`
	Dados      map[string]any `json:"dados,omitempty"`
	OcorridoEm time.Time      `json:"ocorridoEm"`
}

// Notificador envia alertas para um webhook externo. Sem URL, não faz nada.
type Notificador struct {
	URL    string
	Client *http.Client
	Logger *zap.Logger
	Agora  func() time.Time
}

func NewNotificador(url string, timeout time.Duration, logger *zap.Logger) *Notificador {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notificador{
		URL:    url,
		Client: &http.Client{Timeout: timeout},
		Logger: logger,
		Agora:  time.Now,
	}
}

// Enviar publica o evento. Falhas são registradas no log e devolvidas, mas
// quem chama não deve interromper a operação por causa delas.
func (n *Notificador) Enviar(ctx context.Context, ev Evento) error {
	if n == nil || n.URL == "" {
		return nil
	}
	if ev.OcorridoEm.IsZero() {
		ev.OcorridoEm = n.Agora()
	}
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.Client.Do(req)
	if err != nil {
		n.Logger.Warn("erro ao enviar webhook", zap.String("tipo", ev.Tipo), zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		err := fmt.Errorf("webhook respondeu %d", resp.StatusCode)
		n.Logger.Warn("webhook recusou evento", zap.String("tipo", ev.Tipo), zap.Int("status", resp.StatusCode))
		return err
	}
	return nil
}

// MudancaDeEtapa avisa quando a oportunidade foi fechada ou perdida. Outras etapas são ignoradas.
func (n *Notificador) MudancaDeEtapa(ctx context.Context, o *models.Oportunidade) error {
	var tipo, msg string
	switch o.Etapa {
	case models.EtapaFechamento:
		tipo, msg = EventoOportunidadeFechada, "Oportunidade fechada"
	case models.EtapaPerdida:
		tipo, msg = EventoOportunidadePerdida, "Oportunidade perdida"
	default:
		return nil
	}
	return n.Enviar(ctx, Evento{
		Tipo:       tipo,
		Mensagem:   msg,
		VendedorID: o.VendedorID,
		Dados: map[string]any{
			"oportunidadeId": o.ID,
			"titulo":         o.Titulo,
			"valorEstimado":  o.ValorEstimado.StringFixed(2),
		},
	})
}
