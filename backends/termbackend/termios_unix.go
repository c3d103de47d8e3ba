//go:build unix

package termbackend

import "golang.org/x/sys/unix"

// rawModeState stores the terminal attributes in effect before raw mode, so
// they can be restored on exit.
type rawModeState struct {
	termios unix.Termios
}

// enableRawMode switches the terminal to raw mode: no echo, no canonical
// line buffering, no signal generation, byte-at-a-time reads.
func enableRawMode(fd int) (*rawModeState, error) {
	termios, err := unix.IoctlGetTermios(fd, getAttrIOCTL)
	if err != nil {
		return nil, err
	}
	state := &rawModeState{termios: *termios}

	termios.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	termios.Iflag &^= unix.IXON | unix.ICRNL | unix.BRKINT | unix.INPCK | unix.ISTRIP
	termios.Oflag &^= unix.OPOST
	termios.Cflag |= unix.CS8
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, setAttrNowIOCTL, termios); err != nil {
		return nil, err
	}
	return state, nil
}

// disableRawMode restores the saved terminal attributes.
func disableRawMode(fd int, state *rawModeState) error {
	if state == nil {
		return nil
	}
	return unix.IoctlSetTermios(fd, setAttrNowIOCTL, &state.termios)
}

// getTerminalSize returns the terminal dimensions in cells.
func getTerminalSize(fd int) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}
