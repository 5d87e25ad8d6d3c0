package shipment

import (
	"fmt"
	"strings"
	"time"
)

// batchSize is how many sequence numbers fit in one batch of display ids.
const batchSize = 10000

// governorateCodes maps destination cities to the three-letter prefix of the
// display id. Unknown cities fall back to the first three letters upcased.
var governorateCodes = map[string]string{
	"cairo":          "CAI",
	"giza":           "GIZ",
	"alexandria":     "ALX",
	"qalyubia":       "QLB",
	"sharqia":        "SHR",
	"dakahlia":       "DKH",
	"beheira":        "BHR",
	"gharbia":        "GHB",
	"monufia":        "MNF",
	"minya":          "MNY",
	"asyut":          "AST",
	"sohag":          "SHG",
	"qena":           "QNA",
	"luxor":          "LXR",
	"aswan":          "ASW",
	"ismailia":       "ISM",
	"port said":      "PSD",
	"suez":           "SUZ",
	"damietta":       "DMT",
	"fayoum":         "FYM",
	"beni suef":      "BNS",
	"kafr el sheikh": "KFS",
	"red sea":        "RSS",
	"new valley":     "NVL",
	"matruh":         "MTR",
	"north sinai":    "NSI",
	"south sinai":    "SSI",
}

// GovernorateCode resolves the display-id prefix for a destination city.
func GovernorateCode(city string) string {
	key := strings.ToLower(strings.TrimSpace(city))
	if code, ok := governorateCodes[key]; ok {
		return code
	}

	letters := []rune(strings.ToUpper(key))
	if len(letters) >= 3 {
		return string(letters[:3])
	}
	return "XXX"
}

// DisplayID builds the human-readable shipment id from the destination city,
// creation time, and the 1-based global sequence number n.
// Format: {GOV}-{yymmdd}-{batch}-{seq}, batch = (n-1)/10000, seq = (n-1)%10000
// zero-padded to four digits.
func DisplayID(city string, createdAt time.Time, n int64) string {
	batch := (n - 1) / batchSize
	seq := (n - 1) % batchSize
	return fmt.Sprintf("%s-%s-%d-%04d", GovernorateCode(city), createdAt.Format("060102"), batch, seq)
}
