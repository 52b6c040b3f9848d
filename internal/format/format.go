package format

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/dustin/go-humanize"

	"github.com/lgtm-migrator/qibot/internal/tmpl"
)

var (
	timeTemplate    = tmpl.New("<t:${timestamp}> (${elapsed})")
	nameTagTemplate = tmpl.New("${name}#${tag}")
)

// RelativeTime renders t as a Discord timestamp marker followed by the time
// elapsed since then, e.g. "<t:1700000000> (5 minutes ago)".
func RelativeTime(t time.Time) string {
	return RelativeTimeAt(t, time.Now().UTC())
}

// RelativeTimeAt is RelativeTime measured against now instead of the clock.
// Instants after now read as "... from now".
func RelativeTimeAt(t, now time.Time) string {
	elapsed := humanize.RelTime(t.UTC(), now.UTC(), "ago", "from now")
	return timeTemplate.MustSubstitute(tmpl.Vars{
		"timestamp": t.Unix(),
		"elapsed":   elapsed,
	})
}

// UserTag renders "<name>#<discriminator>".
func UserTag(name, discriminator string) string {
	return nameTagTemplate.MustSubstitute(tmpl.Vars{
		"name": name,
		"tag":  discriminator,
	})
}

// MemberTag renders the name tag of a Discord user. A nil user renders as an
// empty string.
func MemberTag(u *discordgo.User) string {
	if u == nil {
		return ""
	}
	return UserTag(u.Username, u.Discriminator)
}
