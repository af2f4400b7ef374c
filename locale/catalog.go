package locale

import (
	"errors"

	"golang.org/x/text/language"

	"github.com/forestrie/go-arbor/arbor"
)

// Key identifies one error kind in a message catalog.
type Key string

const (
	KeyNodeNotFound      Key = "node-not-found"
	KeyParentNotFound    Key = "parent-not-found"
	KeyStaleIndex        Key = "stale-index"
	KeyNoChildrenAllowed Key = "no-children-allowed"
	KeyNoDataAllowed     Key = "no-data-allowed"
	KeyNodeHasChildren   Key = "node-has-children"
	KeyCycleDetected     Key = "cycle-detected"
	KeyInvalidPosition   Key = "invalid-position"
	KeyNoChildren        Key = "no-children"
	KeyRootHasNoParent   Key = "root-has-no-parent"
	KeyMissingInParent   Key = "missing-in-parent"
)

var kinds = []struct {
	err error
	key Key
}{
	{arbor.ErrNodeNotFound, KeyNodeNotFound},
	{arbor.ErrParentNotFound, KeyParentNotFound},
	{arbor.ErrStaleIndex, KeyStaleIndex},
	{arbor.ErrNoChildrenAllowed, KeyNoChildrenAllowed},
	{arbor.ErrNoDataAllowed, KeyNoDataAllowed},
	{arbor.ErrNodeHasChildren, KeyNodeHasChildren},
	{arbor.ErrCycleDetected, KeyCycleDetected},
	{arbor.ErrInvalidPosition, KeyInvalidPosition},
	{arbor.ErrNoChildren, KeyNoChildren},
	{arbor.ErrRootHasNoParent, KeyRootHasNoParent},
	{arbor.ErrMissingInParent, KeyMissingInParent},
}

// KeyFor returns the message key for any error wrapping one of the arbor
// sentinels. ok is false for errors outside the taxonomy.
func KeyFor(err error) (key Key, ok bool) {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.key, true
		}
	}
	return "", false
}

// english is the default-language message set. It is complete: every key has
// an entry.
var english = map[Key]string{
	KeyNodeNotFound:      "The node was not found.",
	KeyParentNotFound:    "The parent node was not found.",
	KeyStaleIndex:        "The index refers to a node that no longer exists.",
	KeyNoChildrenAllowed: "The node does not allow children.",
	KeyNoDataAllowed:     "The node does not allow data.",
	KeyNodeHasChildren:   "The node cannot be removed while it has children.",
	KeyCycleDetected:     "The move would make the node its own descendant.",
	KeyInvalidPosition:   "The child position is out of range.",
	KeyNoChildren:        "The node has no children.",
	KeyRootHasNoParent:   "A root node has no parent.",
	KeyMissingInParent:   "The node is missing from its parent's children.",
}

// Catalog is a registry of message strings per language. The default
// language carries a complete message set; other languages hold only the
// strings that differ from it.
type Catalog struct {
	def      language.Tag
	tags     []language.Tag
	messages map[language.Tag]map[Key]string
	matcher  language.Matcher
}

// NewCatalog returns a catalog whose default language is English, with the
// full default message set registered.
func NewCatalog() *Catalog {
	c := &Catalog{
		def:      language.English,
		tags:     []language.Tag{language.English},
		messages: map[language.Tag]map[Key]string{language.English: english},
	}
	c.matcher = language.NewMatcher(c.tags)
	return c
}

// Set registers a message string for key in the given language. Only strings
// that differ from the default-language original need entries; lookup falls
// back to the default for missing keys.
func (c *Catalog) Set(tag language.Tag, key Key, message string) {
	m, ok := c.messages[tag]
	if !ok {
		m = map[Key]string{}
		c.messages[tag] = m
		c.tags = append(c.tags, tag)
		c.matcher = language.NewMatcher(c.tags)
	}
	m[key] = message
}

// Message returns the string for key in the best-matching registered
// language for prefer, falling back to the default language when no tag or
// no entry matches.
func (c *Catalog) Message(key Key, prefer ...language.Tag) string {
	_, idx, _ := c.matcher.Match(prefer...)
	tag := c.tags[idx]
	if s, ok := c.messages[tag][key]; ok {
		return s
	}
	return c.messages[c.def][key]
}

// Localize renders err in the best-matching registered language. Errors
// outside the arbor taxonomy are rendered with their own Error string.
func (c *Catalog) Localize(err error, prefer ...language.Tag) string {
	key, ok := KeyFor(err)
	if !ok {
		return err.Error()
	}
	return c.Message(key, prefer...)
}
