package provider

import "time"

func (p *FinnhubProvider) SetClock(now func() time.Time) { p.now = now }
