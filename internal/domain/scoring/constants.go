package scoring

type Zone string

const (
	ZoneGreen  Zone = "hijau"
	ZoneYellow Zone = "kuning"
	ZoneRed    Zone = "merah"
)

// Legacy maps a zone onto the older success/warning/critical vocabulary
// still stored in zonaKinerja and zonaPerilaku.
func (z Zone) Legacy() string {
	switch z {
	case ZoneGreen:
		return "success"
	case ZoneYellow:
		return "warning"
	default:
		return "critical"
	}
}

type Profile string

const (
	ProfileLeader    Profile = "Leader"
	ProfileVisionary Profile = "Visionary"
	ProfilePerformer Profile = "Performer"
	ProfileAtRisk    Profile = "At-Risk"
)

type Decision string

const (
	DecisionPromote  Decision = "Promosi"
	DecisionRetain   Decision = "Dipertahankan"
	DecisionCoaching Decision = "Pembinaan"
	DecisionDemote   Decision = "Demosi"
)

type Strategy string

const (
	StrategySaveByMargin Strategy = "Save by Margin"
	StrategySaveByStaff  Strategy = "Save by Staff"
	StrategyNone         Strategy = "N/A"
)

type VisionStatus string

const (
	VisionAligned     VisionStatus = "Align"
	VisionNeedsAdjust VisionStatus = "Perlu Penyesuaian"
	VisionNotAligned  VisionStatus = "Belum Sesuai"
)

type Generation string

const (
	GenerationZ          Generation = "Gen Z"
	GenerationMillennial Generation = "Millennial"
	GenerationX          Generation = "Gen X"
	GenerationBoomer     Generation = "Boomer"
)

const (
	PillarCount = 18
	MinScore    = 1
	MaxScore    = 5

	PillarProspecting  = 1
	PillarTeamBuilding = 4
	PillarTarget       = 5
	PillarStructure    = 7
	PillarProductivity = 9
	PillarConsistency  = 13

	// Fixed new-account target per quarter used in quarter progress.
	TargetNAPerQuarter = 2
)

// Zone thresholds on the total reality score.
const (
	greenZoneMin  = 75
	yellowZoneMin = 51
)

// CriticalPillars gate profile classification and early warnings.
var CriticalPillars = [3]int{PillarTeamBuilding, PillarProductivity, PillarConsistency}

var pillarNames = [PillarCount]string{
	"Kemampuan Mencari Calon Nasabah",
	"Kemampuan Menutup Penjualan",
	"Kemampuan Menjaga Nasabah Aktif",
	"Kemampuan Mencetak Tim Baru (Kaderisasi)",
	"Pencapaian Target Penjualan",
	"Penguasaan Pasar Wilayah",
	"Kelengkapan Struktur Tim",
	"Jumlah Jalur Aktif",
	"Produktivitas Pimpinan",
	"Kesiapan Regenerasi",
	"Kerja Sama Antar Tim",
	"Kemampuan Beradaptasi",
	"Disiplin & Konsistensi Kerja",
	"Semangat & Motivasi Tim",
	"Inovasi Cara Kerja",
	"Pelatihan & Pengembangan Keterampilan",
	"Kepuasan Nasabah",
	"Pemahaman Pasar Lokal",
}

// PillarName returns the display name for a pillar id, or "" when out of range.
func PillarName(id int) string {
	if id < 1 || id > PillarCount {
		return ""
	}
	return pillarNames[id-1]
}

func isCritical(id int) bool {
	for _, c := range CriticalPillars {
		if c == id {
			return true
		}
	}
	return false
}
