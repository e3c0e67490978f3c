package audit

import (
	"time"

	"aisg/internal/domain/scoring"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Audit is one persisted submission together with everything computed
// from it.
type Audit struct {
	ID        string         `json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	Input     scoring.Input  `json:"input"`
	Result    scoring.Result `json:"result"`
}

type ChatMessage struct {
	ID        string    `json:"id"`
	AuditID   string    `json:"auditId"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Summary is the subset of an audit returned right after creation.
type Summary struct {
	AuditID        string                 `json:"auditId"`
	ZonaKinerja    string                 `json:"zonaKinerja"`
	ZonaPerilaku   string                 `json:"zonaPerilaku"`
	ZonaFinal      scoring.Zone           `json:"zonaFinal"`
	Profil         scoring.Profile        `json:"profil"`
	Magic          scoring.Magic          `json:"magicSection"`
	Recommendation scoring.Recommendation `json:"prodemRekomendasi"`
}

func (a Audit) Summary() Summary {
	return Summary{
		AuditID:        a.ID,
		ZonaKinerja:    a.Result.ZonaKinerja,
		ZonaPerilaku:   a.Result.ZonaPerilaku,
		ZonaFinal:      a.Result.ZonaFinal,
		Profil:         a.Result.Profil,
		Magic:          a.Result.Magic,
		Recommendation: a.Result.Prodem,
	}
}
