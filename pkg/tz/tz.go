package tz

import "time"

// SaoPaulo is the America/Sao_Paulo location the congregation lives in; event
// day boundaries are computed against it.
var SaoPaulo *time.Location

func init() {
	var err error
	SaoPaulo, err = time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		panic("tz: load America/Sao_Paulo: " + err.Error())
	}
}
