package journal

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"

	"git.lost.host/meutraa/caeli/internal/game"
	_ "github.com/mattn/go-sqlite3"
)

type DefaultJournal struct {
	Path string

	db *sql.DB
}

// ActivationsCompact holds the ticks at which one lane was activated
type ActivationsCompact struct {
	Section int      `json:"section"`
	Ticks   []uint64 `json:"ticks"`
}

func compactActivations(activations []game.Activation) []ActivationsCompact {
	sections := 0
	for _, a := range activations {
		if a.Section+1 > sections {
			sections = a.Section + 1
		}
	}
	acs := make([]ActivationsCompact, sections)
	for i := range acs {
		acs[i] = ActivationsCompact{Section: i, Ticks: []uint64{}}
	}
	for _, a := range activations {
		acs[a.Section].Ticks = append(acs[a.Section].Ticks, a.Tick)
	}
	return acs
}

// uncompactActivations restores the activations ordered by tick
func uncompactActivations(acs []ActivationsCompact) []game.Activation {
	activations := []game.Activation{}
	for _, ac := range acs {
		for _, tick := range ac.Ticks {
			activations = append(activations, game.Activation{Section: ac.Section, Tick: tick})
		}
	}
	sort.SliceStable(activations, func(i, j int) bool {
		return activations[i].Tick < activations[j].Tick
	})
	return activations
}

func (j *DefaultJournal) Init() error {
	db, err := sql.Open("sqlite3", j.Path)
	if err != nil {
		return fmt.Errorf("unable to open journal %v: %w", j.Path, err)
	}

	initStatement := `
	create table if not exists sessions
	  (
		  id integer not null primary key,
		  sum text not null,
		  speed real not null,
		  activations blob not null,
		  created timestamp default current_timestamp
	  );
	create index if not exists sessions_sum on sessions(sum);
	`
	if _, err = db.Exec(initStatement); nil != err {
		db.Close()
		return fmt.Errorf("unable to create journal tables: %w", err)
	}

	j.db = db
	return nil
}

func (j *DefaultJournal) Deinit() {
	if nil != j.db {
		if err := j.db.Close(); nil != err {
			log.Println("unable to close journal", err)
		}
		j.db = nil
	}
}

func hashLayout(layout game.Layout) (string, error) {
	data, err := json.Marshal(layout)
	if nil != err {
		return "", err
	}
	sum := sha256.Sum256(data)
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

func (j *DefaultJournal) Save(layout game.Layout, speed float64, activations []game.Activation) error {
	if nil == j.db {
		return errors.New("journal is not open")
	}
	sum, err := hashLayout(layout)
	if nil != err {
		return fmt.Errorf("unable to hash layout: %w", err)
	}
	data, err := json.Marshal(compactActivations(activations))
	if nil != err {
		return fmt.Errorf("unable to marshal activations: %w", err)
	}
	if _, err = j.db.Exec("insert into sessions(sum, speed, activations) values(?, ?, ?)", sum, speed, data); nil != err {
		return fmt.Errorf("unable to save session: %w", err)
	}
	return nil
}

func (j *DefaultJournal) Load(layout game.Layout) ([]History, error) {
	if nil == j.db {
		return nil, errors.New("journal is not open")
	}
	sum, err := hashLayout(layout)
	if nil != err {
		return nil, fmt.Errorf("unable to hash layout: %w", err)
	}

	rows, err := j.db.Query("select id, sum, speed, activations from sessions where sum = ? order by id", sum)
	if nil != err {
		return nil, fmt.Errorf("unable to load sessions: %w", err)
	}
	defer rows.Close()

	histories := []History{}
	for rows.Next() {
		var h History
		var data []byte
		if err := rows.Scan(&h.ID, &h.Sum, &h.Speed, &data); nil != err {
			return nil, fmt.Errorf("unable to read session: %w", err)
		}
		var acs []ActivationsCompact
		if err := json.Unmarshal(data, &acs); nil != err {
			log.Println("unable to unmarshal session", h.ID, err)
			continue
		}
		h.Activations = uncompactActivations(acs)
		histories = append(histories, h)
	}
	return histories, rows.Err()
}

// Replay runs the activations through a fresh session. The engine is
// driven by ticks alone, so this reproduces the hits of the original run.
func (j *DefaultJournal) Replay(layout game.Layout, history *History) ([]game.Hit, error) {
	s, err := layout.Session(game.WithSpeed(history.Speed))
	if nil != err {
		return nil, err
	}

	hits := []game.Hit{}
	for _, a := range history.Activations {
		if a.Section < 0 || a.Section >= s.Track().SectionCount() {
			return nil, fmt.Errorf("%w: activation of %v", game.ErrSectionOutOfRange, a.Section)
		}
		for s.TickCount() < a.Tick {
			s.Tick()
		}
		hits = append(hits, s.Activate(a.Section)...)
		s.Deactivate(a.Section)
	}
	return hits, nil
}
