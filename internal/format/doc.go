// Package format renders values for display in chat messages.
//
// # Timestamps
//
// RelativeTime produces a Discord timestamp marker followed by a
// human-readable distance from the current time:
//
//	<t:1700000000> (5 minutes ago)
//	<t:1700086400> (1 day from now)
//
// The marker carries whole seconds since the Unix epoch and the client
// renders it in the reader's locale. The parenthesised phrase comes from
// go-humanize and is always English. RelativeTimeAt takes the reference
// instant explicitly, which keeps output stable in tests.
//
// # User Tags
//
// UserTag joins a name and a discriminator as "name#tag". The discriminator
// is rendered exactly as given, including the "0" Discord assigns to accounts
// migrated to unique usernames. MemberTag reads both parts from a
// *discordgo.User and returns "" for a nil user.
//
// # Templates
//
// Both layouts are fixed tmpl.Template values substituted in strict mode.
// Every placeholder is always bound, so rendering cannot fail.
package format
