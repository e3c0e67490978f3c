package coach

import (
	"fmt"

	"aisg/internal/domain/audit"
)

// historyWindow is how many earlier messages accompany a new question.
const historyWindow = 10

type Turn struct {
	Role audit.Role
	Text string
}

type Prompt struct {
	System  string
	History []Turn
	Message string
}

// SystemPrompt grounds the model in one audit's headline figures.
func SystemPrompt(a audit.Audit) string {
	return fmt.Sprintf(`Anda adalah AI coach profesional untuk AISG (Audit Intelligence SG). Anda membantu karyawan memahami hasil audit performa mereka.

DATA AUDIT:
- Nama: %s
- Jabatan: %s
- Reality Score: %d/90
- Profil: %s
- Zona: %s
- ProDem: %s

TUGAS ANDA:
1. Jawab pertanyaan tentang hasil audit dengan jelas dan supportif
2. Berikan insight actionable berdasarkan data audit
3. Motivasi karyawan untuk improve dengan tone profesional namun friendly
4. Jika ditanya tentang strategi improvement, refer ke Action Plan 30-60-90 dalam audit report
5. Gunakan Bahasa Indonesia yang profesional

Jawab dengan concise (2-3 paragraf max), fokus pada value bukan panjang teks.`,
		a.Input.Name, a.Input.JobTitle, a.Result.TotalRealityScore,
		a.Result.Profil, a.Result.ZonaFinal, a.Result.Prodem.Decision)
}

// recentTurns keeps the last historyWindow messages, oldest first.
func recentTurns(history []audit.ChatMessage) []Turn {
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	turns := make([]Turn, 0, len(history))
	for _, msg := range history {
		role := audit.RoleAssistant
		if msg.Role == audit.RoleUser {
			role = audit.RoleUser
		}
		turns = append(turns, Turn{Role: role, Text: msg.Content})
	}
	return turns
}
