package teletext

import (
	"crypto/sha1"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Page is a decoded fixture as held in the database.
type Page struct {
	Name    string
	Code    string
	Decoder Decoder
	Raw     []byte
}

type PageDB struct {
	db *sql.DB
}

func NewPageDB(file string) (*PageDB, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on&_busy_timeout=5000", file))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS page (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, raw BLOB NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS fixture (id INTEGER PRIMARY KEY NOT NULL, name TEXT NOT NULL UNIQUE, code TEXT NOT NULL, decoder TEXT NOT NULL, page_id INTEGER NOT NULL, FOREIGN KEY(page_id) REFERENCES page(id))"); err != nil {
		db.Close()
		return nil, err
	}

	return &PageDB{
		db: db,
	}, nil
}

func (db *PageDB) Close() error {
	return db.db.Close()
}

func addPage(tx *sql.Tx, raw []byte) (int64, error) {
	sha := fmt.Sprintf("%X", sha1.Sum(raw))

	if _, err := tx.Exec("INSERT OR IGNORE INTO page (sha1, raw) VALUES (?, ?)", sha, raw); err != nil {
		return 0, err
	}

	var id int64
	if err := tx.QueryRow("SELECT id FROM page WHERE sha1 = ?", sha).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// AddPage stores p, replacing any page previously stored under the same name.
// Identical page contents are only stored once and contents no longer
// referenced by any name are removed.
func (db *PageDB) AddPage(p Page) (err error) {
	tx, err := db.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	id, err := addPage(tx, p.Raw)
	if err != nil {
		return err
	}
	if _, err = tx.Exec("INSERT OR REPLACE INTO fixture (name, code, decoder, page_id) VALUES (?, ?, ?, ?)", p.Name, p.Code, string(p.Decoder), id); err != nil {
		return err
	}
	if _, err = tx.Exec("DELETE FROM page WHERE id NOT IN (SELECT page_id FROM fixture)"); err != nil {
		return err
	}
	return nil
}

// FindPageByName returns the named page or nil if there isn't one.
func (db *PageDB) FindPageByName(name string) (*Page, error) {
	p := Page{Name: name}
	var decoder string
	switch err := db.db.QueryRow("SELECT f.code, f.decoder, p.raw FROM fixture AS f JOIN page AS p ON f.page_id = p.id WHERE f.name = ?", name).Scan(&p.Code, &decoder, &p.Raw); err {
	case sql.ErrNoRows:
		return nil, nil
	case nil:
		p.Decoder = Decoder(decoder)
		return &p, nil
	default:
		return nil, err
	}
}

// Pages returns every stored page ordered by name.
func (db *PageDB) Pages() ([]Page, error) {
	rows, err := db.db.Query("SELECT f.name, f.code, f.decoder, p.raw FROM fixture AS f JOIN page AS p ON f.page_id = p.id ORDER BY f.name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []Page
	for rows.Next() {
		var p Page
		var decoder string
		if err := rows.Scan(&p.Name, &p.Code, &decoder, &p.Raw); err != nil {
			return nil, err
		}
		p.Decoder = Decoder(decoder)
		pages = append(pages, p)
	}

	return pages, rows.Err()
}

// Length returns the number of distinct page contents stored.
func (db *PageDB) Length() (int, error) {
	var n int
	if err := db.db.QueryRow("SELECT COUNT(*) FROM page").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
