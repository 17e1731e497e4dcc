//go:build tinygo && baremetal && picocalc

package hal

import (
	"errors"
	"machine"
	"time"
)

const (
	picoCalcKbdAddr uint16 = 0x1F
	picoCalcKbdCmd  byte   = 0x09

	picoCalcPoll = 2 * time.Millisecond
)

// Keyboard MCU FIFO event types.
const (
	picoCalcPressed  byte = 0x01
	picoCalcHeld     byte = 0x02
	picoCalcReleased byte = 0x03
)

// picoCalcCodes maps the keyboard MCU's non-printable codes to the keys the calculator uses.
// Alt, Ctrl and the cursor cluster are not listed and are dropped.
var picoCalcCodes = map[byte]KeyCode{
	0x08: KeyBackspace,
	0xB1: KeyEscape,
	0xD4: KeyDelete,
	0xB5: KeyUp,
	0xB6: KeyDown,
	0x81: KeyF1,
	0x82: KeyF2,
	0x83: KeyF3,
	0x84: KeyF4,
	0x85: KeyF5,
}

// decodePicoCalc turns one FIFO entry into a key event. Held reports are ignored; the keypad
// service does its own repeat.
func decodePicoCalc(kind, code byte) (KeyEvent, bool) {
	if kind != picoCalcPressed && kind != picoCalcReleased {
		return KeyEvent{}, false
	}
	press := kind == picoCalcPressed
	if kc, ok := picoCalcCodes[code]; ok {
		return KeyEvent{Code: kc, Press: press}, true
	}
	switch {
	case code == '\r' || code == '\n':
		return KeyEvent{Code: KeyEnter, Press: press}, true
	case press && code >= 0x20 && code < 0x7F:
		return KeyEvent{Press: true, Rune: rune(code)}, true
	}
	return KeyEvent{}, false
}

type picoCalcKeyboard struct {
	ch  chan KeyEvent
	i2c *machine.I2C
	cmd [1]byte
	rx  [2]byte
}

func (k *picoCalcKeyboard) Events() <-chan KeyEvent { return k.ch }

// newPicoCalcKeyboard finds the keyboard MCU and starts polling it. I2C1 is the PicoCalc
// wiring; some TinyGo targets only expose I2C0.
func newPicoCalcKeyboard() (*picoCalcKeyboard, error) {
	k := &picoCalcKeyboard{ch: make(chan KeyEvent, 64), cmd: [1]byte{picoCalcKbdCmd}}
	if !k.probe() {
		return nil, errors.New("keyboard: I2C unavailable")
	}
	go k.poll()
	return k, nil
}

func (k *picoCalcKeyboard) probe() bool {
	for _, bus := range []*machine.I2C{machine.I2C1, machine.I2C0} {
		if bus == nil {
			continue
		}
		for _, freq := range []uint32{100_000, 400_000} {
			if err := bus.Configure(machine.I2CConfig{
				SCL:       machine.GP7,
				SDA:       machine.GP6,
				Frequency: freq,
			}); err != nil {
				continue
			}
			k.i2c = bus
			// The keyboard MCU can be slow to answer right after power-on.
			for i := 0; i < 50; i++ {
				if k.read() == nil {
					return true
				}
				time.Sleep(10 * time.Millisecond)
			}
		}
	}
	return false
}

func (k *picoCalcKeyboard) read() error {
	return k.i2c.Tx(picoCalcKbdAddr, k.cmd[:], k.rx[:])
}

func (k *picoCalcKeyboard) poll() {
	for {
		if k.read() == nil && (k.rx[0] != 0 || k.rx[1] != 0) {
			if ev, ok := decodePicoCalc(k.rx[0], k.rx[1]); ok {
				select {
				case k.ch <- ev:
				default:
				}
			}
		}
		time.Sleep(picoCalcPoll)
	}
}
