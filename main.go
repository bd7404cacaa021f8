package main

import (
	"log"
)

func main() {
	p := Program{}
	if err := p.Run(); nil != err {
		log.Fatalln(err)
	}
}
