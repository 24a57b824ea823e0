// Package report renders the selection result into the static dashboard page.
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/awano27/daily-ai-news-pages-sub000/internal/ranking"
	"github.com/awano27/daily-ai-news-pages-sub000/internal/selection"
)

var jst = time.FixedZone("JST", 9*60*60)

// category presentation, in tab order.
var categoryMeta = []struct {
	Name  string
	Icon  string
	Note  string
	DomID string
}{
	{Name: "Business", Icon: "🏢", Note: "ビジネスニュース", DomID: "business"},
	{Name: "Tools", Icon: "⚡", Note: "ツールニュース", DomID: "tools"},
	{Name: "Posts", Icon: "🧪", Note: "SNS/論文ポスト", DomID: "posts"},
}

type itemView struct {
	Title         string
	TitleJA       string
	URL           string
	Summary       string
	Source        string
	TimeAgo       string
	Score         string
	PriorityIcon  string
	PriorityClass string
	PriorityLabel string
	Tags          []string
}

type sectionView struct {
	DomID  string
	Name   string
	Icon   string
	Note   string
	Count  int
	Hidden bool
	Items  []itemView
}

type pageView struct {
	Updated  string
	Hours    int
	Sections []sectionView
	TopPicks []itemView
	Total    int
}

// Renderer produces the HTML page. Safe for reuse across runs.
type Renderer struct {
	tmpl *template.Template
	now  func() time.Time
}

func New() *Renderer {
	return &Renderer{
		tmpl: template.Must(template.New("page").Parse(pageTemplate)),
		now:  time.Now,
	}
}

// Render builds the page for one selection result. translations maps item
// URL (or title when the URL is empty) to its Japanese title; missing
// entries simply render the original title.
func (r *Renderer) Render(result *selection.Result, translations map[string]string, lookbackHours int) ([]byte, error) {
	now := r.now().In(jst)

	page := pageView{
		Updated: now.Format("2006-01-02 15:04 JST"),
		Hours:   lookbackHours,
	}

	for i, meta := range categoryMeta {
		items := result.Categories[meta.Name]
		section := sectionView{
			DomID:  meta.DomID,
			Name:   meta.Name,
			Icon:   meta.Icon,
			Note:   meta.Note,
			Count:  len(items),
			Hidden: i != 0,
		}
		for _, item := range items {
			section.Items = append(section.Items, r.itemView(item, translations, now))
		}
		page.Sections = append(page.Sections, section)
		page.Total += len(items)
	}

	for _, item := range result.TopPicks {
		page.TopPicks = append(page.TopPicks, r.itemView(item, translations, now))
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}

// Write renders and writes the page to path.
func (r *Renderer) Write(path string, result *selection.Result, translations map[string]string, lookbackHours int) error {
	data, err := r.Render(result, translations, lookbackHours)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func (r *Renderer) itemView(item ranking.ScoredItem, translations map[string]string, now time.Time) itemView {
	key := item.URL
	if key == "" {
		key = item.Title
	}

	v := itemView{
		Title:         item.Title,
		TitleJA:       translations[key],
		URL:           item.URL,
		Summary:       item.Summary,
		Source:        item.Source,
		Score:         fmt.Sprintf("%.1f", item.Score),
		PriorityIcon:  item.Priority.Icon,
		PriorityClass: item.Priority.Class,
		PriorityLabel: item.Priority.Label,
		Tags:          item.Tags,
	}
	if v.TitleJA == v.Title {
		v.TitleJA = ""
	}
	if !item.Published.IsZero() {
		v.TimeAgo = timeAgo(item.Published.In(jst), now)
	}
	return v
}

// timeAgo renders a relative timestamp the way the dashboard always has.
func timeAgo(t, now time.Time) string {
	sec := int(now.Sub(t).Seconds())
	switch {
	case sec < 60:
		return "たった今"
	case sec < 3600:
		return fmt.Sprintf("%d分前", sec/60)
	case sec < 86400:
		return fmt.Sprintf("%d時間前", sec/3600)
	default:
		return fmt.Sprintf("%d日前", sec/86400)
	}
}
