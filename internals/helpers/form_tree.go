package helper

import (
	"mime/multipart"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// FormNode pohon nilai dari key bracket notation,
// mis. questions[0][options][1][title].
type FormNode struct {
	Value    string
	HasValue bool
	File     *multipart.FileHeader
	Children map[string]*FormNode
}

var reBracketKey = regexp.MustCompile(`\[([^\[\]]*)\]`)

// splitFormKey "questions[0][options][1][title]" -> [questions 0 options 1 title]
func splitFormKey(key string) []string {
	i := strings.IndexByte(key, '[')
	if i < 0 {
		return []string{key}
	}
	parts := []string{key[:i]}
	for _, m := range reBracketKey.FindAllStringSubmatch(key[i:], -1) {
		parts = append(parts, m[1])
	}
	return parts
}

func (n *FormNode) child(name string) *FormNode {
	if n.Children == nil {
		n.Children = map[string]*FormNode{}
	}
	c, ok := n.Children[name]
	if !ok {
		c = &FormNode{}
		n.Children[name] = c
	}
	return c
}

func (n *FormNode) walk(key string) *FormNode {
	cur := n
	for _, p := range splitFormKey(key) {
		cur = cur.child(p)
	}
	return cur
}

// NewFormTree membangun pohon dari nilai teks dan berkas.
// Untuk key yang berulang, nilai pertama yang dipakai.
func NewFormTree(values map[string][]string, files map[string][]*multipart.FileHeader) *FormNode {
	root := &FormNode{}
	for k, vs := range values {
		if len(vs) == 0 {
			continue
		}
		node := root.walk(k)
		node.Value = vs[0]
		node.HasValue = true
	}
	for k, fhs := range files {
		if len(fhs) == 0 || fhs[0] == nil || fhs[0].Filename == "" {
			continue
		}
		root.walk(k).File = fhs[0]
	}
	return root
}

// FormTreeFromRequest membaca multipart/form-data atau
// application/x-www-form-urlencoded. ok=false untuk body lain (mis. JSON).
func FormTreeFromRequest(c *fiber.Ctx) (*FormNode, bool) {
	if form, err := c.MultipartForm(); err == nil {
		return NewFormTree(form.Value, form.File), true
	}
	if !strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEApplicationForm) {
		return nil, false
	}
	values := map[string][]string{}
	c.Request().PostArgs().VisitAll(func(k, v []byte) {
		key := string(k)
		values[key] = append(values[key], string(v))
	})
	return NewFormTree(values, nil), true
}

func (n *FormNode) Get(name string) *FormNode {
	if n == nil || n.Children == nil {
		return nil
	}
	return n.Children[name]
}

func (n *FormNode) String(name string) string {
	if c := n.Get(name); c != nil {
		return c.Value
	}
	return ""
}

func (n *FormNode) FileOf(name string) *multipart.FileHeader {
	if c := n.Get(name); c != nil {
		return c.File
	}
	return nil
}

// Indexed anak-anak ber-key numerik, urut menaik.
func (n *FormNode) Indexed(name string) []*FormNode {
	c := n.Get(name)
	if c == nil {
		return nil
	}
	type entry struct {
		idx  int
		node *FormNode
	}
	var entries []entry
	for k, v := range c.Children {
		idx, err := strconv.Atoi(k)
		if err != nil || idx < 0 {
			continue
		}
		entries = append(entries, entry{idx, v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].idx < entries[j].idx })
	out := make([]*FormNode, len(entries))
	for i, e := range entries {
		out[i] = e.node
	}
	return out
}

// OptionalUint nil kalau kosong / bukan angka positif.
func (n *FormNode) OptionalUint(name string) *uint {
	s := strings.TrimSpace(n.String(name))
	if s == "" {
		return nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || v == 0 {
		return nil
	}
	u := uint(v)
	return &u
}
