package score

import (
	"database/sql"
	"encoding/json"
	"log"
	"math"

	"git.lost.host/meutraa/eotc/internal/game"
	"git.lost.host/meutraa/eotc/internal/processor"
	_ "github.com/mattn/go-sqlite3"
)

type DefaultScorer struct {
	db       *sql.DB
	database string
}

func NewDefaultScorer(database string) *DefaultScorer {
	return &DefaultScorer{database: database}
}

// inputsCompact is the stored form of an input log. Hold bits are not
// stored; a key is held exactly when it was down on the previous input,
// so they are reconstructed on load.
type inputsCompact struct {
	Ts   []float64 `json:"ts"`
	X    []float64 `json:"x"`
	Y    []float64 `json:"y"`
	Keys []uint8   `json:"keys"`
}

func compactInputs(inputs []game.Input) inputsCompact {
	c := inputsCompact{
		Ts:   make([]float64, len(inputs)),
		X:    make([]float64, len(inputs)),
		Y:    make([]float64, len(inputs)),
		Keys: make([]uint8, len(inputs)),
	}
	for i, in := range inputs {
		c.Ts[i] = in.Ts
		c.X[i] = in.Pos.X
		c.Y[i] = in.Pos.Y
		c.Keys[i] = in.Keys.Mask()
	}
	return c
}

func uncompactInputs(c inputsCompact) []game.Input {
	inputs := make([]game.Input, len(c.Ts))
	var prev game.KeyState
	for i := range c.Ts {
		keys := game.KeyStateFromMask(c.Keys[i])
		inputs[i] = game.Input{
			Ts:   c.Ts[i],
			Pos:  game.Vec2{X: c.X[i], Y: c.Y[i]},
			Keys: keys,
			Hold: game.KeyState{
				K1: keys.K1 && prev.K1,
				K2: keys.K2 && prev.K2,
			},
		}
		prev = keys
	}
	return inputs
}

func (s *DefaultScorer) Init() error {
	db, err := sql.Open("sqlite3", s.database)
	if nil != err {
		return err
	}

	initStatement := `
	create table if not exists scores
	  (
		  id integer not null primary key,
		  sum text,
		  od real,
		  cs real,
		  inputs bytearray
	  );
	`
	_, err = db.Exec(initStatement)
	if nil != err {
		return err
	}

	s.db = db
	return nil
}

func (s *DefaultScorer) Deinit() {
	if nil != s.db {
		s.db.Close()
	}
}

func (s *DefaultScorer) Save(b *game.Beatmap, inputs []game.Input) {
	data, err := json.Marshal(compactInputs(inputs))
	if nil != err {
		log.Println("unable to marshal input log", err)
		return
	}
	_, err = s.db.Exec("insert into scores(sum, od, cs, inputs) values(?, ?, ?, ?)",
		b.Sum, b.OverallDifficulty, b.CircleSize, data)
	if nil != err {
		log.Println("unable to save input log", err)
		return
	}
}

func (s *DefaultScorer) Load(b *game.Beatmap) []History {
	histories := []History{}
	rows, err := s.db.Query("select sum, inputs from scores where sum = ?", b.Sum)
	if nil != err && err != sql.ErrNoRows {
		log.Println("unable to load input logs", err)
		return histories
	}
	defer rows.Close()
	for rows.Next() {
		var sum string
		var data []byte
		rows.Scan(&sum, &data)
		var c inputsCompact
		if err := json.Unmarshal(data, &c); nil != err {
			log.Println("unable to unmarshal input log")
			continue
		}
		histories = append(histories, History{
			Sum:    sum,
			Inputs: uncompactInputs(c),
		})
	}
	return histories
}

// Score re-judges the beatmap from scratch against an input log and
// aggregates the verdicts. Objects left without a result count as
// misses, the end of session sweep the engine itself does not own.
func (s *DefaultScorer) Score(b *game.Beatmap, inputs []game.Input) Score {
	judged := b.Clone()

	p := processor.FromInputs(inputs)
	p.ProcessAll(judged)

	var score Score
	var errors []float64

	for _, obj := range judged.Objects {
		switch o := obj.(type) {
		case *game.Circle:
			if nil == o.Judgement {
				score.Count(game.HitMiss)
				score.Results = append(score.Results, game.HitMiss)
				continue
			}
			score.Count(o.Judgement.Result)
			score.Results = append(score.Results, o.Judgement.Result)
			errors = append(errors, o.Judgement.At-o.StartTime)
		case *game.Slider:
			grade := o.Grade()
			score.Count(grade)
			score.Results = append(score.Results, grade)
		}
	}

	score.Mean, score.Stdev = meanStdev(errors)
	return score
}

func meanStdev(xs []float64) (float64, float64) {
	if len(xs) < 2 {
		return 0, 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(len(xs))

	variance := 0.0
	for _, x := range xs {
		xi := x - mean
		variance += xi * xi
	}
	variance /= float64(len(xs) - 1)
	return mean, math.Sqrt(variance)
}
