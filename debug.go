package locator

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tidwall/sjson"

	"github.com/danpasecinic/locator/internal/container"
)

type EntryInfo = container.EntryInfo

type Snapshot struct {
	Name     string
	Disposed bool
	Entries  []EntryInfo
	Scopes   []Snapshot
}

func snapshotOf(c Container) Snapshot {
	return Snapshot{
		Name:     c.Name(),
		Disposed: c.IsDisposed(),
		Entries:  c.engine().Entries(),
	}
}

// Snapshot describes the registrations of the registry and of each scope.
// Taking a snapshot never constructs lazy values.
func (r *Registry) Snapshot() Snapshot {
	snap := snapshotOf(r)
	for _, s := range r.scopeList() {
		snap.Scopes = append(snap.Scopes, s.Snapshot())
	}
	return snap
}

func (s *Scope) Snapshot() Snapshot {
	return snapshotOf(s)
}

func (s Snapshot) JSON() (string, error) {
	doc, err := sjson.Set("{}", "name", s.Name)
	if err != nil {
		return "", err
	}
	if doc, err = sjson.Set(doc, "disposed", s.Disposed); err != nil {
		return "", err
	}
	if doc, err = sjson.SetRaw(doc, "entries", "[]"); err != nil {
		return "", err
	}

	for _, e := range s.Entries {
		entry, err := entryJSON(e)
		if err != nil {
			return "", err
		}
		if doc, err = sjson.SetRaw(doc, "entries.-1", entry); err != nil {
			return "", err
		}
	}

	if len(s.Scopes) == 0 {
		return doc, nil
	}

	if doc, err = sjson.SetRaw(doc, "scopes", "[]"); err != nil {
		return "", err
	}
	for _, child := range s.Scopes {
		scope, err := child.JSON()
		if err != nil {
			return "", err
		}
		if doc, err = sjson.SetRaw(doc, "scopes.-1", scope); err != nil {
			return "", err
		}
	}
	return doc, nil
}

func entryJSON(e EntryInfo) (string, error) {
	doc, err := sjson.Set("{}", "key", e.Key)
	if err != nil {
		return "", err
	}
	if doc, err = sjson.Set(doc, "lifetime", e.Lifetime.String()); err != nil {
		return "", err
	}
	return sjson.Set(doc, "initialized", e.Initialized)
}

func (r *Registry) SnapshotJSON() (string, error) {
	return r.Snapshot().JSON()
}

func (r *Registry) PrintTree() {
	r.FprintTree(os.Stdout)
}

func (r *Registry) FprintTree(w io.Writer) {
	snap := r.Snapshot()
	fprintContainer(w, snap, "")
	for _, s := range snap.Scopes {
		_, _ = fmt.Fprintf(w, "└─ scope %s\n", s.Name)
		fprintContainer(w, s, "   ")
	}
}

func (r *Registry) SprintTree() string {
	var sb strings.Builder
	r.FprintTree(&sb)
	return sb.String()
}

func fprintContainer(w io.Writer, snap Snapshot, indent string) {
	if len(snap.Entries) == 0 {
		_, _ = fmt.Fprintf(w, "%s(empty)\n", indent)
		return
	}

	for _, e := range snap.Entries {
		status := "○"
		if e.Initialized {
			status = "●"
		}
		_, _ = fmt.Fprintf(w, "%s%s %s [%s]\n", indent, status, e.Key, e.Lifetime)
	}
}
