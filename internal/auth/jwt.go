package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/KromaEnergia/api-vendas/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// AccessTTLPadrao é a validade do token quando a configuração não define outra.
const AccessTTLPadrao = 24 * time.Hour

// Claims carrega o usuário e o papel (RBAC simples: vendedor ou gestor).
type Claims struct {
	UsuarioID uint         `json:"usuarioId"`
	Papel     models.Papel `json:"papel"`
	jwt.RegisteredClaims
}

// Emissor gera e valida tokens HS256.
type Emissor struct {
	Segredo []byte
	TTL     time.Duration
	Agora   func() time.Time
}

func NewEmissor(segredo string, ttl time.Duration) (*Emissor, error) {
	if segredo == "" {
		return nil, errors.New("JWT_SECRET não definida")
	}
	if ttl <= 0 {
		ttl = AccessTTLPadrao
	}
	return &Emissor{Segredo: []byte(segredo), TTL: ttl, Agora: time.Now}, nil
}

// GerarToken gera um JWT para o usuário com o papel informado
func (e *Emissor) GerarToken(usuarioID uint, papel models.Papel) (string, error) {
	now := e.Agora()
	claims := &Claims{
		UsuarioID: usuarioID,
		Papel:     papel,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(usuarioID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(e.TTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(e.Segredo)
}

// ValidarToken valida assinatura e expiração e retorna as claims
func (e *Emissor) ValidarToken(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(e.Agora),
		jwt.WithExpirationRequired(),
	)
	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return e.Segredo, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("token inválido ou expirado: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("não foi possível extrair claims")
	}
	if !claims.Papel.Valido() || claims.UsuarioID == 0 {
		return nil, errors.New("claims inválidas")
	}
	return claims, nil
}
