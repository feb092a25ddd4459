package core

import (
	"strings"
)

// DefaultPrefix is the text command prefix used when none is configured
const DefaultPrefix = "!"

// Verb is the closed set of text commands the bot answers
type Verb string

const (
	VerbUnknown  Verb = ""
	VerbCreature Verb = "pokemon"
	VerbCompare  Verb = "compare"
	VerbRandom   Verb = "random"
	VerbCategory Verb = "type"
	VerbHelp     Verb = "help"
)

// Verbs lists every known verb in help order
var Verbs = []Verb{VerbCreature, VerbCompare, VerbRandom, VerbCategory, VerbHelp}

var verbAliases = map[string]Verb{
	"pokemon":  VerbCreature,
	"creature": VerbCreature,
	"compare":  VerbCompare,
	"random":   VerbRandom,
	"type":     VerbCategory,
	"category": VerbCategory,
	"help":     VerbHelp,
}

// ParseVerb maps a command word to its verb, VerbUnknown when it is not one of ours
func ParseVerb(word string) Verb {
	if v, ok := verbAliases[strings.ToLower(word)]; ok {
		return v
	}
	return VerbUnknown
}

func (v Verb) String() string {
	return string(v)
}

// Command is a parsed prefix command
type Command struct {
	Prefix string
	Name   string // command word as typed, lowercased
	Verb   Verb
	Args   []string
}

// ParseCommand splits a message into a command. It returns false when the
// message does not start with the prefix or carries no command word.
func ParseCommand(content, prefix string) (*Command, bool) {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if !strings.HasPrefix(content, prefix) {
		return nil, false
	}

	fields := strings.Fields(strings.TrimPrefix(content, prefix))
	if len(fields) == 0 {
		return nil, false
	}

	name := strings.ToLower(fields[0])
	return &Command{
		Prefix: prefix,
		Name:   name,
		Verb:   ParseVerb(name),
		Args:   fields[1:],
	}, true
}

// Arg returns the nth argument or an empty string
func (c *Command) Arg(n int) string {
	if n < 0 || n >= len(c.Args) {
		return ""
	}
	return c.Args[n]
}

// Rest joins the arguments from the nth on with single spaces
func (c *Command) Rest(n int) string {
	if n < 0 || n >= len(c.Args) {
		return ""
	}
	return strings.Join(c.Args[n:], " ")
}

// Usage renders an example invocation, e.g. "`!pokemon pikachu`"
func (c *Command) Usage(example string) string {
	return "`" + c.Prefix + example + "`"
}
