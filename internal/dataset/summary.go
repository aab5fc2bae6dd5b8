package dataset

import "github.com/sirupsen/logrus"

// Stats describes what the loader accepted from the source table.
type Stats struct {
	Source  string `json:"source"`
	Format  string `json:"format"`
	Rows    int    `json:"rows"`
	Skipped int    `json:"skipped"`

	Columns [numColumns]int `json:"-"`
}

func (s Stats) log(entry *logrus.Entry) {
	cols := logrus.Fields{}
	for c, name := range columnNames {
		cols[name] = s.Columns[c]
	}
	entry.WithFields(logrus.Fields{
		"rows":    s.Rows,
		"skipped": s.Skipped,
		"format":  s.Format,
	}).Info("dataset loaded")
	entry.WithFields(cols).Debug("detected dataset column indices")
}
