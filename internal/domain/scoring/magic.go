package scoring

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// BirthDateLayout is the DD-MM-YYYY form used by Input.BirthDate.
const BirthDateLayout = "02-01-2006"

var zodiacSigns = []string{
	"Capricorn", "Aquarius", "Pisces", "Aries", "Taurus", "Gemini",
	"Cancer", "Leo", "Virgo", "Libra", "Scorpio", "Sagittarius",
}

// zodiacStarts lists the first day of each sign within the calendar year.
// Capricorn covers both ends of the year.
var zodiacStarts = []struct {
	month time.Month
	day   int
	sign  string
}{
	{time.January, 20, "Aquarius"},
	{time.February, 19, "Pisces"},
	{time.March, 21, "Aries"},
	{time.April, 20, "Taurus"},
	{time.May, 21, "Gemini"},
	{time.June, 21, "Cancer"},
	{time.July, 23, "Leo"},
	{time.August, 23, "Virgo"},
	{time.September, 23, "Libra"},
	{time.October, 23, "Scorpio"},
	{time.November, 22, "Sagittarius"},
	{time.December, 22, "Capricorn"},
}

var nicknames = map[Profile]string{
	ProfileLeader:    "The Trailblazer",
	ProfileVisionary: "The Architect",
	ProfilePerformer: "The Executor",
	ProfileAtRisk:    "The Rising Phoenix",
}

// ZodiacSign returns the Western zodiac sign for a day and month.
func ZodiacSign(day int, month time.Month) string {
	sign := "Capricorn"
	for _, s := range zodiacStarts {
		if month > s.month || (month == s.month && day >= s.day) {
			sign = s.sign
		}
	}
	return sign
}

// GenerationOf buckets a birth year into a cohort.
func GenerationOf(year int) Generation {
	switch {
	case year >= 1997:
		return GenerationZ
	case year >= 1981:
		return GenerationMillennial
	case year >= 1965:
		return GenerationX
	default:
		return GenerationBoomer
	}
}

// ParseBirthDate splits a DD-MM-YYYY date into its parts without
// checking that the day exists in the month.
func ParseBirthDate(s string) (day int, month time.Month, year int, err error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("birth date %q: want DD-MM-YYYY", s)
	}
	var nums [3]int
	for i, p := range parts {
		n, convErr := strconv.Atoi(p)
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("birth date %q: %w", s, convErr)
		}
		nums[i] = n
	}
	return nums[0], time.Month(nums[1]), nums[2], nil
}

func boosterFor(sign string, gen Generation) (name, booster string) {
	z := catalog.Zodiac[sign]
	// Gen X and Boomer have no copy of their own and reuse the millennial voice.
	if gen == GenerationZ {
		return z.Name, z.GenZ
	}
	return z.Name, z.Millennial
}

// BuildMagic renders the persona section. The quote is the only field that
// depends on rnd.
func BuildMagic(in Input, profile Profile, coaching []string, rnd RandomSource) Magic {
	day, month, year, err := ParseBirthDate(in.BirthDate)
	if err != nil {
		day, month, year = 0, 0, 0
	}
	sign := ZodiacSign(day, month)
	gen := GenerationOf(year)
	zodiacName, booster := boosterFor(sign, gen)

	nickname, ok := nicknames[profile]
	if !ok {
		nickname = nicknames[ProfileAtRisk]
	}

	var cp [coachingPointCount]string
	copy(cp[:], coaching)

	return Magic{
		Nickname: nickname,
		Narrative: fmt.Sprintf("%s, Anda adalah %s - individu dengan potensi luar biasa yang sedang dalam perjalanan menuju puncak karier. "+
			"Hasil audit menunjukkan bahwa Anda memiliki fondasi yang solid, namun masih ada ruang untuk tumbuh dan berkembang. "+
			"Ingatlah, setiap pemimpin besar pernah berada di posisi Anda saat ini. Yang membedakan mereka adalah keberanian untuk terus maju, belajar dari setiap tantangan, dan tidak pernah berhenti berinovasi. "+
			"90 hari ke depan adalah golden period Anda untuk membuktikan bahwa Anda siap untuk level berikutnya!",
			in.Name, nickname),
		Zodiac:     zodiacName,
		Generation: gen,
		Booster:    booster,
		CoachingHighlight: fmt.Sprintf("Key Focus: %s. Ini adalah prioritas tertinggi yang akan membuka pintu kesuksesan Anda di kuartal ini.",
			cp[0]),
		CallToAction: fmt.Sprintf("3 Langkah Konkret untuk 90 Hari: (1) %s, (2) %s, (3) %s. "+
			"Eksekusi dengan disiplin, pantau progress setiap minggu, dan celebrate setiap small win!",
			cp[0], cp[1], cp[2]),
		Quote: pickQuote(rnd),
	}
}

func pickQuote(rnd RandomSource) string {
	n := len(catalog.Quotes)
	i := 0
	if rnd != nil {
		i = rnd.IntN(n)
	}
	if i < 0 || i >= n {
		i = 0
	}
	return catalog.Quotes[i]
}
