package locale

import "golang.org/x/text/language"

var englishMonths = [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"}
var englishAbbreviatedMonths = [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
var englishDays = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
var englishAbbreviatedDays = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Invariant culture is associated with English but not with any region
var Invariant = &Culture{
	Tag:               language.Und,
	ShortDate:         "MM/dd/yyyy",
	LongDate:          "dddd, dd MMMM yyyy",
	ShortTime:         "HH:mm",
	LongTime:          "HH:mm:ss",
	MonthDay:          "MMMM dd",
	YearMonth:         "yyyy MMMM",
	DateSeparator:     "/",
	TimeSeparator:     ":",
	AM:                "AM",
	PM:                "PM",
	Era:               "A.D.",
	Months:            englishMonths,
	AbbreviatedMonths: englishAbbreviatedMonths,
	Days:              englishDays,
	AbbreviatedDays:   englishAbbreviatedDays,
}

var EnglishUS = &Culture{
	Name:              "en-US",
	Tag:               language.AmericanEnglish,
	ShortDate:         "M/d/yyyy",
	LongDate:          "dddd, MMMM d, yyyy",
	ShortTime:         "h:mm tt",
	LongTime:          "h:mm:ss tt",
	MonthDay:          "MMMM d",
	YearMonth:         "MMMM yyyy",
	DateSeparator:     "/",
	TimeSeparator:     ":",
	AM:                "AM",
	PM:                "PM",
	Era:               "A.D.",
	Months:            englishMonths,
	AbbreviatedMonths: englishAbbreviatedMonths,
	Days:              englishDays,
	AbbreviatedDays:   englishAbbreviatedDays,
}

var EnglishGB = &Culture{
	Name:              "en-GB",
	Tag:               language.BritishEnglish,
	ShortDate:         "dd/MM/yyyy",
	LongDate:          "dddd, d MMMM yyyy",
	ShortTime:         "HH:mm",
	LongTime:          "HH:mm:ss",
	MonthDay:          "d MMMM",
	YearMonth:         "MMMM yyyy",
	DateSeparator:     "/",
	TimeSeparator:     ":",
	AM:                "am",
	PM:                "pm",
	Era:               "AD",
	Months:            englishMonths,
	AbbreviatedMonths: englishAbbreviatedMonths,
	Days:              englishDays,
	AbbreviatedDays:   englishAbbreviatedDays,
}

var German = &Culture{
	Name:              "de-DE",
	Tag:               language.MustParse("de-DE"),
	ShortDate:         "dd.MM.yyyy",
	LongDate:          "dddd, d. MMMM yyyy",
	ShortTime:         "HH:mm",
	LongTime:          "HH:mm:ss",
	MonthDay:          "d. MMMM",
	YearMonth:         "MMMM yyyy",
	DateSeparator:     ".",
	TimeSeparator:     ":",
	AM:                "AM",
	PM:                "PM",
	Era:               "n. Chr.",
	Months:            [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
	AbbreviatedMonths: [12]string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni", "Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
	Days:              [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
	AbbreviatedDays:   [7]string{"So.", "Mo.", "Di.", "Mi.", "Do.", "Fr.", "Sa."},
}

var French = &Culture{
	Name:              "fr-FR",
	Tag:               language.MustParse("fr-FR"),
	ShortDate:         "dd/MM/yyyy",
	LongDate:          "dddd d MMMM yyyy",
	ShortTime:         "HH:mm",
	LongTime:          "HH:mm:ss",
	MonthDay:          "d MMMM",
	YearMonth:         "MMMM yyyy",
	DateSeparator:     "/",
	TimeSeparator:     ":",
	AM:                "AM",
	PM:                "PM",
	Era:               "ap. J.-C.",
	Months:            [12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
	AbbreviatedMonths: [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
	Days:              [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
	AbbreviatedDays:   [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
}

var Spanish = &Culture{
	Name:              "es-ES",
	Tag:               language.MustParse("es-ES"),
	ShortDate:         "dd/MM/yyyy",
	LongDate:          "dddd, d 'de' MMMM 'de' yyyy",
	ShortTime:         "H:mm",
	LongTime:          "H:mm:ss",
	MonthDay:          "d 'de' MMMM",
	YearMonth:         "MMMM 'de' yyyy",
	DateSeparator:     "/",
	TimeSeparator:     ":",
	AM:                "a. m.",
	PM:                "p. m.",
	Era:               "d. C.",
	Months:            [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
	AbbreviatedMonths: [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
	Days:              [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
	AbbreviatedDays:   [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
}

var Italian = &Culture{
	Name:              "it-IT",
	Tag:               language.MustParse("it-IT"),
	ShortDate:         "dd/MM/yyyy",
	LongDate:          "dddd d MMMM yyyy",
	ShortTime:         "HH:mm",
	LongTime:          "HH:mm:ss",
	MonthDay:          "d MMMM",
	YearMonth:         "MMMM yyyy",
	DateSeparator:     "/",
	TimeSeparator:     ":",
	AM:                "AM",
	PM:                "PM",
	Era:               "d.C.",
	Months:            [12]string{"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno", "luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre"},
	AbbreviatedMonths: [12]string{"gen", "feb", "mar", "apr", "mag", "giu", "lug", "ago", "set", "ott", "nov", "dic"},
	Days:              [7]string{"domenica", "lunedì", "martedì", "mercoledì", "giovedì", "venerdì", "sabato"},
	AbbreviatedDays:   [7]string{"dom", "lun", "mar", "mer", "gio", "ven", "sab"},
}

var Dutch = &Culture{
	Name:              "nl-NL",
	Tag:               language.MustParse("nl-NL"),
	ShortDate:         "d-M-yyyy",
	LongDate:          "dddd d MMMM yyyy",
	ShortTime:         "HH:mm",
	LongTime:          "HH:mm:ss",
	MonthDay:          "d MMMM",
	YearMonth:         "MMMM yyyy",
	DateSeparator:     "-",
	TimeSeparator:     ":",
	AM:                "a.m.",
	PM:                "p.m.",
	Era:               "n.Chr.",
	Months:            [12]string{"januari", "februari", "maart", "april", "mei", "juni", "juli", "augustus", "september", "oktober", "november", "december"},
	AbbreviatedMonths: [12]string{"jan", "feb", "mrt", "apr", "mei", "jun", "jul", "aug", "sep", "okt", "nov", "dec"},
	Days:              [7]string{"zondag", "maandag", "dinsdag", "woensdag", "donderdag", "vrijdag", "zaterdag"},
	AbbreviatedDays:   [7]string{"zo", "ma", "di", "wo", "do", "vr", "za"},
}

var PortugueseBR = &Culture{
	Name:              "pt-BR",
	Tag:               language.BrazilianPortuguese,
	ShortDate:         "dd/MM/yyyy",
	LongDate:          "dddd, d 'de' MMMM 'de' yyyy",
	ShortTime:         "HH:mm",
	LongTime:          "HH:mm:ss",
	MonthDay:          "d 'de' MMMM",
	YearMonth:         "MMMM 'de' yyyy",
	DateSeparator:     "/",
	TimeSeparator:     ":",
	AM:                "AM",
	PM:                "PM",
	Era:               "d.C.",
	Months:            [12]string{"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"},
	AbbreviatedMonths: [12]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"},
	Days:              [7]string{"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado"},
	AbbreviatedDays:   [7]string{"dom", "seg", "ter", "qua", "qui", "sex", "sáb"},
}
