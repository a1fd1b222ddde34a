package catalog

import (
	"database/sql"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/n0roo/opsdash/internal/classifier"
	"github.com/n0roo/opsdash/internal/db"
	"github.com/n0roo/opsdash/internal/insight"
)

// Store reads and writes catalogs in a SQL database
type Store struct {
	db db.Database
}

// NewStore creates a new catalog store
func NewStore(database db.Database) *Store {
	return &Store{db: database}
}

// Import replaces the stored catalog with c in a single transaction
func (s *Store) Import(c *Catalog) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("트랜잭션 시작 실패: %w", err)
	}
	defer tx.Rollback()

	for _, table := range db.CatalogTables {
		if _, err := tx.Exec(fmt.Sprintf(`DELETE FROM %s`, table)); err != nil {
			return fmt.Errorf("%s 초기화 실패: %w", table, err)
		}
	}

	for _, id := range classifier.Dashboards() {
		b, ok := c.Board(id)
		if !ok {
			continue
		}
		if err := importBoard(tx, id, b); err != nil {
			return fmt.Errorf("%s 저장 실패: %w", id, err)
		}
	}

	for _, kind := range insight.Kinds() {
		entry, ok := c.Insights[kind]
		if !ok {
			continue
		}
		if err := importInsight(tx, kind, entry); err != nil {
			return fmt.Errorf("인사이트 %s 저장 실패: %w", kind, err)
		}
	}

	if err := db.SetMeta(tx, "catalog_version", c.Version); err != nil {
		return fmt.Errorf("버전 저장 실패: %w", err)
	}

	return tx.Commit()
}

func importBoard(tx *sql.Tx, id classifier.DashboardID, b *Board) error {
	if _, err := tx.Exec(`INSERT INTO boards (dashboard, title, default_kind) VALUES (?, ?, ?)`,
		string(id), b.Title, string(b.DefaultKind)); err != nil {
		return err
	}

	for i, r := range b.Rules {
		if _, err := tx.Exec(`INSERT INTO rules (dashboard, seq, pattern, kind) VALUES (?, ?, ?, ?)`,
			string(id), i, r.Match, string(r.Kind)); err != nil {
			return err
		}
	}

	if err := importCards(tx, id, "", b.Cards); err != nil {
		return err
	}

	for i, cat := range b.Categories {
		if _, err := tx.Exec(`INSERT INTO categories (dashboard, seq, category_id, title) VALUES (?, ?, ?, ?)`,
			string(id), i, cat.ID, cat.Title); err != nil {
			return err
		}
		if err := importCards(tx, id, cat.ID, cat.Cards); err != nil {
			return err
		}
	}

	return nil
}

func importCards(tx *sql.Tx, id classifier.DashboardID, categoryID string, cards []Card) error {
	for i, card := range cards {
		series, err := json.Marshal(card.Series)
		if err != nil {
			return fmt.Errorf("series 직렬화 실패: %w", err)
		}
		if _, err := tx.Exec(`INSERT INTO cards (dashboard, category_id, seq, label, value, unit, series) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			string(id), categoryID, i, card.Label, card.Value, card.Unit, string(series)); err != nil {
			return err
		}
	}
	return nil
}

func importInsight(tx *sql.Tx, kind insight.Kind, e insight.Entry) error {
	if _, err := tx.Exec(`INSERT INTO insights (kind, narrative, financial, operational, recommended_action) VALUES (?, ?, ?, ?, ?)`,
		string(kind), e.Narrative, e.Impact.Financial, e.Impact.Operational, e.RecommendedAction); err != nil {
		return err
	}

	for i, item := range e.AffectedItems {
		if _, err := tx.Exec(`INSERT INTO affected_items (kind, seq, item_id, name, location, status) VALUES (?, ?, ?, ?, ?, ?)`,
			string(kind), i, item.ID, item.Name, item.Location, item.Status); err != nil {
			return err
		}
	}

	return nil
}

// Export reads the stored catalog
func (s *Store) Export() (*Catalog, error) {
	c := &Catalog{
		Version:  CurrentVersion,
		Boards:   make(map[classifier.DashboardID]*Board),
		Insights: make(map[insight.Kind]insight.Entry),
	}

	var version sql.NullString
	err := s.db.QueryRow(`SELECT value FROM metadata WHERE key = 'catalog_version'`).Scan(&version)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("버전 조회 실패: %w", err)
	}
	if version.Valid && version.String != "" {
		c.Version = version.String
	}

	if err := s.exportBoards(c); err != nil {
		return nil, err
	}
	if err := s.exportInsights(c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Store) exportBoards(c *Catalog) error {
	rows, err := s.db.Query(`SELECT dashboard, title, default_kind FROM boards`)
	if err != nil {
		return fmt.Errorf("대시보드 조회 실패: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, kind string
		var title sql.NullString
		if err := rows.Scan(&id, &title, &kind); err != nil {
			return err
		}
		c.Boards[classifier.DashboardID(id)] = &Board{
			Title:       title.String,
			DefaultKind: insight.Kind(kind),
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for id, b := range c.Boards {
		if err := s.exportRules(id, b); err != nil {
			return err
		}
		if err := s.exportCategories(id, b); err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) exportRules(id classifier.DashboardID, b *Board) error {
	rows, err := s.db.Query(`SELECT pattern, kind FROM rules WHERE dashboard = ? ORDER BY seq`, string(id))
	if err != nil {
		return fmt.Errorf("규칙 조회 실패: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r classifier.Rule
		var kind string
		if err := rows.Scan(&r.Match, &kind); err != nil {
			return err
		}
		r.Kind = insight.Kind(kind)
		b.Rules = append(b.Rules, r)
	}

	return rows.Err()
}

func (s *Store) exportCategories(id classifier.DashboardID, b *Board) error {
	cards, err := s.exportCards(id)
	if err != nil {
		return err
	}
	b.Cards = cards[""]

	rows, err := s.db.Query(`SELECT category_id, title FROM categories WHERE dashboard = ? ORDER BY seq`, string(id))
	if err != nil {
		return fmt.Errorf("카테고리 조회 실패: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var cat Category
		var title sql.NullString
		if err := rows.Scan(&cat.ID, &title); err != nil {
			return err
		}
		cat.Title = title.String
		cat.Cards = cards[cat.ID]
		b.Categories = append(b.Categories, cat)
	}

	return rows.Err()
}

// exportCards returns a dashboard's cards keyed by category id ("" for tier 1)
func (s *Store) exportCards(id classifier.DashboardID) (map[string][]Card, error) {
	rows, err := s.db.Query(`SELECT category_id, label, value, unit, series FROM cards WHERE dashboard = ? ORDER BY category_id, seq`, string(id))
	if err != nil {
		return nil, fmt.Errorf("카드 조회 실패: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]Card)
	for rows.Next() {
		var categoryID, label string
		var value, unit, series sql.NullString
		if err := rows.Scan(&categoryID, &label, &value, &unit, &series); err != nil {
			return nil, err
		}

		card := Card{Label: label, Value: value.String, Unit: unit.String}
		if series.Valid && series.String != "" && series.String != "null" {
			if err := json.Unmarshal([]byte(series.String), &card.Series); err != nil {
				return nil, fmt.Errorf("series 파싱 실패 (%s): %w", label, err)
			}
		}
		out[categoryID] = append(out[categoryID], card)
	}

	return out, rows.Err()
}

func (s *Store) exportInsights(c *Catalog) error {
	rows, err := s.db.Query(`SELECT kind, narrative, financial, operational, recommended_action FROM insights`)
	if err != nil {
		return fmt.Errorf("인사이트 조회 실패: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind string
		var e insight.Entry
		var financial, operational sql.NullString
		if err := rows.Scan(&kind, &e.Narrative, &financial, &operational, &e.RecommendedAction); err != nil {
			return err
		}
		e.Impact = insight.Impact{Financial: financial.String, Operational: operational.String}
		c.Insights[insight.Kind(kind)] = e
	}
	if err := rows.Err(); err != nil {
		return err
	}
	rows.Close()

	items, err := s.db.Query(`SELECT kind, item_id, name, location, status FROM affected_items ORDER BY kind, seq`)
	if err != nil {
		return fmt.Errorf("영향 항목 조회 실패: %w", err)
	}
	defer items.Close()

	for items.Next() {
		var kind string
		var id, name, location, status sql.NullString
		if err := items.Scan(&kind, &id, &name, &location, &status); err != nil {
			return err
		}
		e, ok := c.Insights[insight.Kind(kind)]
		if !ok {
			continue
		}
		e.AffectedItems = append(e.AffectedItems, insight.AffectedItem{
			ID:       id.String,
			Name:     name.String,
			Location: location.String,
			Status:   status.String,
		})
		c.Insights[insight.Kind(kind)] = e
	}

	return items.Err()
}
