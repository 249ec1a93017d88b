// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package schedule

import (
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/pdiddy/batchconv/pkg/types"
)

// cronParser accepts the standard five-field crontab syntax.
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// CronLine renders a recurrence as the five time fields of a crontab line:
// every N minutes, every N hours at minute zero, or every N days at
// midnight. The generated expression is parsed back before being returned,
// so a malformed line can never reach the crontab.
func CronLine(r types.Recurrence) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}

	var expr string
	switch r.Unit {
	case types.UnitMinute:
		expr = fmt.Sprintf("*/%d * * * *", r.Every)
	case types.UnitHour:
		expr = fmt.Sprintf("0 */%d * * *", r.Every)
	case types.UnitDay:
		expr = fmt.Sprintf("0 0 */%d * *", r.Every)
	}

	if _, err := cronParser.Parse(expr); err != nil {
		return "", fmt.Errorf("generated cron expression %q: %w", expr, err)
	}
	return expr, nil
}
