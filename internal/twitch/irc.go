package twitch

import "strings"

// ircLine is one parsed line off the chat socket. Only the fields the bot
// cares about are pulled out; tags are dropped.
type ircLine struct {
	Command string
	Channel string
	Nick    string
	Text    string
}

// parseLine understands the subset of IRC the chat server speaks to us:
// PING keepalives and PRIVMSG chat lines, with optional @tag and :prefix
// sections. Returns ok=false for anything else.
func parseLine(raw string) (ircLine, bool) {
	line := strings.TrimRight(raw, "\r\n")
	if line == "" {
		return ircLine{}, false
	}

	// leading @badge-info=...;color=... tag section is dropped
	if strings.HasPrefix(line, "@") {
		idx := strings.Index(line, " ")
		if idx < 0 {
			return ircLine{}, false
		}
		line = line[idx+1:]
	}

	var nick string
	if strings.HasPrefix(line, ":") {
		idx := strings.Index(line, " ")
		if idx < 0 {
			return ircLine{}, false
		}
		prefix := line[1:idx]
		if bang := strings.Index(prefix, "!"); bang > 0 {
			nick = prefix[:bang]
		} else {
			nick = prefix
		}
		line = line[idx+1:]
	}

	if strings.HasPrefix(line, "PING") {
		text := ""
		if idx := strings.Index(line, ":"); idx >= 0 {
			text = line[idx+1:]
		}
		return ircLine{Command: "PING", Text: text}, true
	}

	parts := strings.SplitN(line, " :", 2)
	fields := strings.Fields(parts[0])
	if len(fields) == 0 || fields[0] != "PRIVMSG" || len(fields) < 2 {
		return ircLine{}, false
	}

	msg := ircLine{
		Command: "PRIVMSG",
		Channel: strings.TrimPrefix(fields[1], "#"),
		Nick:    nick,
	}
	if len(parts) == 2 {
		msg.Text = parts[1]
	}
	return msg, true
}
