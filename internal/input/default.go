package input

// #include <linux/input-event-codes.h>
// #include <linux/input.h>
import "C"

import (
	"encoding/binary"
	"log"
	"os"
	"syscall"
)

type rawEvent struct {
	Time  syscall.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// Event is one decoded device event: either a gameplay key transition
// or a relative cursor movement.
type Event struct {
	Time syscall.Timeval

	K1       bool
	K2       bool
	Pressed  bool
	Released bool

	Moved  bool
	DX, DY float64
}

// ReadInput decodes key and relative motion events from an evdev
// device into the channel until the device goes away.
// https://github.com/torvalds/linux/blob/master/include/uapi/linux/input-event-codes.h
func ReadInput(device string, events chan *Event) error {
	file, err := os.Open(device)
	if err != nil {
		return err
	}
	go func() {
		defer file.Close()

		var ev rawEvent
		for {
			err = binary.Read(file, binary.LittleEndian, &ev)
			if nil != err {
				log.Println(err, "unable to read input device")
				return
			}
			switch ev.Type {
			case C.EV_KEY:
				if ev.Value != 0 && ev.Value != 1 {
					continue
				}
				e := &Event{
					Time:     ev.Time,
					Pressed:  ev.Value == 1,
					Released: ev.Value == 0,
				}
				switch ev.Code {
				case C.KEY_Z, C.BTN_LEFT:
					e.K1 = true
				case C.KEY_X, C.BTN_RIGHT:
					e.K2 = true
				default:
					continue
				}
				events <- e
			case C.EV_REL:
				e := &Event{Time: ev.Time, Moved: true}
				switch ev.Code {
				case C.REL_X:
					e.DX = float64(ev.Value)
				case C.REL_Y:
					e.DY = float64(ev.Value)
				default:
					continue
				}
				events <- e
			}
		}
	}()
	return nil
}
