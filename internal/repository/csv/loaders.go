package csv

import (
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"toolhire-pricing/internal/config"
	"toolhire-pricing/internal/domain"
	"toolhire-pricing/internal/logger"
	"toolhire-pricing/internal/repository"
)

var _ repository.RateSource = (*Store)(nil)

// Store is the CSV-backed rate source. Each accessor re-reads its file
// so tables can be edited between runs without restarting anything.
type Store struct {
	memberships string
	tools       string
	seasons     string
	timeWindows string
	lateFees    string
}

// NewStore builds a store over the model directory from configuration.
func NewStore(model config.ModelConfig) *Store {
	return &Store{
		memberships: filepath.Join(model.Dir, model.Memberships),
		tools:       filepath.Join(model.Dir, model.Tools),
		seasons:     filepath.Join(model.Dir, model.Seasons),
		timeWindows: filepath.Join(model.Dir, model.TimeWindows),
		lateFees:    filepath.Join(model.Dir, model.LateFees),
	}
}

// Memberships loads the membership table: level, fee, monthly credits
// and discount percentage.
func (s *Store) Memberships() ([]domain.MembershipRow, error) {
	records, err := readRecords(s.memberships)
	if err != nil {
		return nil, err
	}

	var rows []domain.MembershipRow
	for _, r := range records {
		if len(r) < 4 || isHeader(r, "Level") {
			continue
		}
		rows = append(rows, domain.MembershipRow{
			Level:           domain.ParseMembershipLevel(r[0]),
			Fee:             domain.MoneyFromString(r[1]),
			MonthlyCredits:  domain.CreditsFromString(r[2]),
			DiscountPercent: parsePercent(r[3]),
		})
	}
	logger.Debug("Loaded membership rows", "file", s.memberships, "count", len(rows))
	return rows, nil
}

// Tools loads the tool category table. Columns are category label,
// examples, deposit, the four window prices, and the base credit
// grant.
func (s *Store) Tools() ([]domain.ToolRow, error) {
	records, err := readRecords(s.tools)
	if err != nil {
		return nil, err
	}

	var rows []domain.ToolRow
	for _, r := range records {
		if len(r) < 8 || isHeader(r, "Category") {
			continue
		}
		rows = append(rows, domain.ToolRow{
			Tier:         domain.ParseToolTier(r[0]),
			Price4h:      domain.MoneyFromString(r[3]),
			PriceDay:     domain.MoneyFromString(r[4]),
			PriceWeekend: domain.MoneyFromString(r[5]),
			PriceWeek:    domain.MoneyFromString(r[6]),
			BaseCredits:  domain.CreditsFromString(r[7]),
		})
	}
	logger.Debug("Loaded tool rows", "file", s.tools, "count", len(rows))
	return rows, nil
}

// Seasons loads the seasonal offer table. The offer column either
// names a double-credit promotion or carries a percent discount; the
// range column uses the table's named seasons, resolved against the
// current UTC year.
func (s *Store) Seasons() ([]domain.SeasonRow, error) {
	records, err := readRecords(s.seasons)
	if err != nil {
		return nil, err
	}

	var rows []domain.SeasonRow
	for _, r := range records {
		if len(r) < 3 || isHeader(r, "Season") {
			continue
		}

		row := domain.SeasonRow{Name: r[0]}
		offer := r[2]
		if strings.Contains(strings.ToLower(offer), "double credits") {
			row.Type = domain.SeasonDoubleCredits
			row.DoubleCredRate = decimal.NewFromInt(10)
		} else {
			row.Type = domain.SeasonPricePercentOff
			row.PercentOff = digitsPercent(offer)
		}
		row.From, row.To = parseSeasonRange(r[1])
		rows = append(rows, row)
	}
	logger.Debug("Loaded season rows", "file", s.seasons, "count", len(rows))
	return rows, nil
}

// TimeWindows loads the window multiplier table: label, "1.2x"-style
// multiplier, credit bonus percentage, availability note.
func (s *Store) TimeWindows() ([]domain.TimeWindowRow, error) {
	records, err := readRecords(s.timeWindows)
	if err != nil {
		return nil, err
	}

	var rows []domain.TimeWindowRow
	for _, r := range records {
		if len(r) < 4 || isHeader(r, "Window") {
			continue
		}

		mult, err := decimal.NewFromString(strings.TrimSpace(strings.ReplaceAll(r[1], "x", "")))
		if err != nil || mult.IsZero() {
			mult = decimal.NewFromInt(1)
		}

		// A "+10%" credit bonus maps to a conversion rate of half the
		// stated percentage (credits are granted at 0.5 cr per unit).
		bonusRate := decimal.Decimal{}
		if strings.Contains(r[2], "%") {
			bonusRate = digitsPercent(r[2]).Mul(decimal.NewFromFloat(0.5))
		}

		rows = append(rows, domain.TimeWindowRow{
			Label:           r[0],
			PriceMultiplier: mult,
			BonusRate:       bonusRate,
			Availability:    r[3],
		})
	}
	logger.Debug("Loaded time window rows", "file", s.timeWindows, "count", len(rows))
	return rows, nil
}

// LateFees loads the late fee bands. A row whose rate cells carry a
// "/h" marker is an hourly band; otherwise it is a day-factor band.
// The free "0-1" band is skipped. Rate columns follow the membership
// level order of the table header.
func (s *Store) LateFees() ([]domain.LateFeeRow, error) {
	records, err := readRecords(s.lateFees)
	if err != nil {
		return nil, err
	}

	var rows []domain.LateFeeRow
	for _, r := range records {
		if len(r) < 6 || isHeader(r, "Lateness") {
			continue
		}

		band := normalizeCell(r[0])
		if strings.Contains(band, "0-1") {
			continue
		}

		if strings.Contains(strings.ToLower(r[1]), "/h") || strings.Contains(strings.ToLower(r[2]), "/h") {
			perHour := make(map[domain.MembershipLevel]domain.Money, len(domain.MembershipLevels))
			for i, level := range domain.MembershipLevels {
				perHour[level] = parsePerHour(r[1+i])
			}
			rows = append(rows, domain.LateFeeRow{Band: band, PerHour: perHour})
			continue
		}

		factors := make(map[domain.MembershipLevel]decimal.Decimal, len(domain.MembershipLevels))
		for i, level := range domain.MembershipLevels {
			factors[level] = parseFactor(r[1+i])
		}
		rows = append(rows, domain.LateFeeRow{Band: band, DayFactor: factors})
	}
	logger.Debug("Loaded late fee rows", "file", s.lateFees, "count", len(rows))
	return rows, nil
}

func isHeader(r []string, firstCellPrefix string) bool {
	return len(r) > 0 && strings.HasPrefix(strings.ToLower(r[0]), strings.ToLower(firstCellPrefix))
}

// normalizeCell folds en-dash and multiplication-sign glyphs that show
// up in hand-edited tables.
func normalizeCell(s string) string {
	s = strings.ReplaceAll(s, "–", "-")
	s = strings.ReplaceAll(s, "×", "x")
	return strings.TrimSpace(s)
}

// parsePercent turns "5%" into 0.05. Unparseable text yields zero.
func parsePercent(s string) decimal.Decimal {
	clean := strings.TrimSpace(strings.ReplaceAll(s, "%", ""))
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Decimal{}
	}
	return d.Div(decimal.NewFromInt(100))
}

// digitsPercent extracts the digits of a label like "15% off" as a
// fraction. No digits yields zero.
func digitsPercent(s string) decimal.Decimal {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.Atoi(b.String())
	if err != nil {
		return decimal.Decimal{}
	}
	return decimal.NewFromInt(int64(v)).Div(decimal.NewFromInt(100))
}

func parsePerHour(s string) domain.Money {
	clean := strings.ReplaceAll(strings.ToLower(normalizeCell(s)), "/h", "")
	return domain.MoneyFromString(clean)
}

// parseFactor reads a day factor like "1.5x day rate", defaulting to 1.
func parseFactor(s string) decimal.Decimal {
	clean := strings.ToLower(normalizeCell(s))
	var b strings.Builder
	for _, r := range clean {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.NewFromInt(1)
	}
	return d
}

// parseSeasonRange resolves the table's named date ranges against the
// current UTC year. Unknown labels cover the whole year, so the offer
// still participates rather than being dropped.
func parseSeasonRange(s string) (time.Time, time.Time) {
	year := time.Now().UTC().Year()
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	label := strings.ToLower(strings.TrimSpace(s))
	switch {
	case label == "november":
		return day(year, time.November, 1), day(year, time.November, 30)
	case strings.Contains(label, "jun"):
		return day(year, time.June, 1), day(year, time.August, 31)
	case strings.Contains(label, "mar"):
		return day(year, time.March, 1), day(year, time.April, 30)
	case strings.Contains(label, "sep"):
		return day(year, time.September, 1), day(year, time.October, 31)
	case strings.Contains(label, "nov"):
		return day(year, time.November, 1), day(year+1, time.February, 28)
	default:
		return day(year, time.January, 1), day(year, time.December, 31)
	}
}
