package options

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/confusion/pkg/reservation"
	"tableflip.dev/confusion/pkg/timeutil"
)

const (
	layoutISO      = "2006-1-2 15:04"
	layoutISOShort = "1/2 15:04"
)

// ReserveOptions
type ReserveOptions struct {
	Guests   int
	Smoking  bool
	AtString string
	InString string
}

func AddReserveArgs(cmd *cobra.Command, o *ReserveOptions) {
	cmd.Flags().IntVarP(&o.Guests, "guests", "g", reservation.MinGuests,
		fmt.Sprintf("Number of guests, %d to %d.", reservation.MinGuests, reservation.MaxGuests))
	cmd.Flags().BoolVar(&o.Smoking, "smoking", false,
		"Ask for a smoking table.")
	cmd.Flags().StringVar(&o.AtString, "at", "",
		`Date and time, example: --at="2020-2-28 19:30", --at="2/28 19:30" or RFC 3339.`)
	cmd.Flags().StringVar(&o.InString, "in", "",
		`Time from now instead of --at, example: --in=2h or --in="1d 3h".`)
}

// GetAt parses --at in the local time zone, or adds --in to now. It
// returns nil when neither is set.
func (o *ReserveOptions) GetAt(now time.Time) (*time.Time, error) {
	if o.InString != "" {
		if o.AtString != "" {
			return nil, errors.New("use either --at or --in, not both")
		}
		d, err := timeutil.ParseSpan(o.InString)
		if err != nil {
			return nil, fmt.Errorf("invalid --in: %w", err)
		}
		t := now.Add(d)
		return &t, nil
	}
	if o.AtString == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, o.AtString); err == nil {
		return &t, nil
	}
	t, err := time.ParseInLocation(layoutISO, o.AtString, now.Location())
	if err != nil {
		// Let the year be the same.
		t, err = time.ParseInLocation(layoutISOShort, o.AtString, now.Location())
		if err != nil {
			return nil, fmt.Errorf("invalid --at %q", o.AtString)
		}
		t = t.AddDate(now.Year(), 0, 0)
		// 1/3 asked on 12/5 means next January.
		if t.Before(now) {
			t = t.AddDate(1, 0, 0)
		}
	}
	return &t, nil
}
