package usecase

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const referenceSuffixSpace = 36 * 36 * 36 * 36

// GenerateReference builds a booking reference like RT-LZ3K9F2A-7QXD
func GenerateReference(prefix string, now time.Time, rnd *rand.Rand) string {
	stamp := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	suffix := strings.ToUpper(strconv.FormatInt(int64(rnd.Intn(referenceSuffixSpace)), 36))
	if len(suffix) < 4 {
		suffix = strings.Repeat("0", 4-len(suffix)) + suffix
	}

	return prefix + "-" + stamp + "-" + suffix
}
