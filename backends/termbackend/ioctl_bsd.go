//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package termbackend

import "golang.org/x/sys/unix"

const (
	getAttrIOCTL    = unix.TIOCGETA
	setAttrNowIOCTL = unix.TIOCSETA
)
