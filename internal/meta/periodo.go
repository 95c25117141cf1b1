package meta

import "time"

// Periodo é um mês de competência.
type Periodo struct {
	Mes int
	Ano int
}

// ResolverPeriodo completa mês/ano omitidos (zero) a partir de agora.
// Um valor informado é mantido mesmo quando o outro vem de agora.
func ResolverPeriodo(agora time.Time, mes, ano int) Periodo {
	if mes == 0 || ano == 0 {
		if mes == 0 {
			mes = int(agora.Month())
		}
		if ano == 0 {
			ano = agora.Year()
		}
	}
	return Periodo{Mes: mes, Ano: ano}
}

// Valido indica se o mês está entre 1 e 12 e o ano é positivo.
func (p Periodo) Valido() bool {
	return p.Mes >= 1 && p.Mes <= 12 && p.Ano > 0
}

// Intervalo devolve [início, fim) do mês no fuso loc, em UTC.
func (p Periodo) Intervalo(loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	inicio := time.Date(p.Ano, time.Month(p.Mes), 1, 0, 0, 0, 0, loc)
	fim := inicio.AddDate(0, 1, 0)
	return inicio.UTC(), fim.UTC()
}
