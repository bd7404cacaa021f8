package config

import (
	"git.lost.host/meutraa/eotc/internal/game"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	Chart    = kingpin.Arg("chart", "Parsed beatmap geometry file").Required().ExistingFile()
	Replay   = kingpin.Flag("replay", "Replay frame file to judge").Short('r').ExistingFile()
	Database = kingpin.Flag("db", "Score history database").Default("./scores.db").Short('b').String()
	List     = kingpin.Flag("list", "List saved input logs and re-judge one").Short('l').Bool()
	Device   = kingpin.Flag("device", "Input event device for a live session").Short('i').String()
	OD       = kingpin.Flag("od", "Override the overall difficulty").Default("-1").Float64()
	CS       = kingpin.Flag("cs", "Override the circle size").Default("-1").Float64()

	Judgements []Judgement
)

type Judgement struct {
	Hit  game.Hit
	Name string
}

func init() {
	kingpin.Version("0.1.0")
	kingpin.Parse()

	Judgements = []Judgement{
		{Hit: game.HitPerfect, Name: "    \033[38;5;153mPerfect\033[0m"},
		{Hit: game.HitGood, Name: "       \033[1;32mGood\033[0m"},
		{Hit: game.HitAcceptable, Name: " \033[1;33mAcceptable\033[0m"},
		{Hit: game.HitMiss, Name: "       \033[1;31mMiss\033[0m"},
	}
}
