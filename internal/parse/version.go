package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/keibalab/jvspec/internal/models"
)

var updatedDate = regexp.MustCompile(`(\d{4})年(\d{1,2})月(\d{1,2})日`)

// ParseVersionInfo scans the 表紙 sheet for the specification version and
// its publication date. Later matches win, so the newest cover entries
// take precedence.
func ParseVersionInfo(rows [][]string) models.VersionInfo {
	var info models.VersionInfo
	for _, row := range rows {
		for _, text := range row {
			if text == "" {
				continue
			}
			if strings.HasPrefix(text, "Ver.") {
				info.Version = text
			}
			if m := updatedDate.FindStringSubmatch(text); m != nil {
				y, _ := strconv.Atoi(m[1])
				mo, _ := strconv.Atoi(m[2])
				d, _ := strconv.Atoi(m[3])
				info.Updated = fmt.Sprintf("%04d-%02d-%02d", y, mo, d)
			}
		}
	}
	return info
}
