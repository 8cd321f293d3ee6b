package pulsesim

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	sqlx "github.com/jmoiron/sqlx" //make alias name the package to sqlx
)

func ConnectToDatabase(user string, pass string, host string, dbname string) (*sqlx.DB, error) {
	port := "3306"
	dbURI := fmt.Sprintf("%s:%s@(%s:%s)/%s?parseTime=true", user, pass, host, port, dbname)
	db, err := sqlx.Connect("mysql", dbURI)
	return db, err
}

// PulseShapeEntry mirrors one row of the PulseShapes table. Parameter sets
// are valid for a run range, like the rest of the run catalog.
type PulseShapeEntry struct {
	SignalLength int     `db:"SignalLength"`
	PulseStart   int     `db:"PulseStart"`
	HeightMV     float64 `db:"HeightMV"`
	MVBin        float64 `db:"MVBin"`
	Tau1         float64 `db:"Tau1"`
	Tau2         float64 `db:"Tau2"`
	NoiseLevelMV float64 `db:"NoiseLevelMV"`
	Baseline     int     `db:"Baseline"`
}

// WindowEntry mirrors one row of the ExtractionWindows table.
type WindowEntry struct {
	WindowStart int  `db:"WindowStart"`
	WindowEnd   int  `db:"WindowEnd"`
	SubtractLag int  `db:"SubtractLag"`
	ShiftBits   uint `db:"ShiftBits"`
}

// LoadDatabase overwrites the signal and window parameters of the current
// configuration with the sets stored for this run number. The connection
// settings and batch options from the config file stay untouched.
func LoadDatabase(dbConn *sqlx.DB, runNumber int) error {
	shape, err := getPulseShapeFromDB(dbConn, runNumber)
	if err != nil {
		errMessage := fmt.Errorf("error getting pulse shape from database: %w", err)
		logger.Error(errMessage.Error())
		return errMessage
	}
	window, err := getExtractionWindowFromDB(dbConn, runNumber)
	if err != nil {
		errMessage := fmt.Errorf("error getting extraction window from database: %w", err)
		logger.Error(errMessage.Error())
		return errMessage
	}

	configuration.SignalLength = shape.SignalLength
	configuration.PulseStart = shape.PulseStart
	configuration.PulseHeightMV = shape.HeightMV
	configuration.MVBin = shape.MVBin
	configuration.Tau1 = shape.Tau1
	configuration.Tau2 = shape.Tau2
	configuration.NoiseLevelMV = shape.NoiseLevelMV
	configuration.Baseline = shape.Baseline
	configuration.WindowStart = window.WindowStart
	configuration.WindowEnd = window.WindowEnd
	configuration.SubtractLag = window.SubtractLag
	configuration.ShiftBits = window.ShiftBits
	return nil
}

func getPulseShapeFromDB(db *sqlx.DB, runNumber int) (PulseShapeEntry, error) {
	query := "SELECT SignalLength, PulseStart, HeightMV, MVBin, Tau1, Tau2, NoiseLevelMV, Baseline FROM PulseShapes WHERE MinRun <= %d and MaxRun >= %d"
	query = fmt.Sprintf(query, runNumber, runNumber)

	if configuration.Verbosity > 0 {
		logger.Info("Reading pulse shape from database", "database")
	}
	if configuration.Verbosity > 2 {
		message := fmt.Sprintf("Query: %s", query)
		logger.Info(message, "database")
	}

	rows, err := db.Queryx(query)
	if err != nil {
		errMessage := fmt.Errorf("error querying database: %w", err)
		return PulseShapeEntry{}, errMessage
	}

	found := false
	entry := PulseShapeEntry{}
	for rows.Next() {
		err := rows.StructScan(&entry)
		if err != nil {
			errMessage := fmt.Errorf("error scanning DB row: %w", err)
			return PulseShapeEntry{}, errMessage
		}
		found = true
	}
	if !found {
		return PulseShapeEntry{}, fmt.Errorf("no pulse shape stored for run %d", runNumber)
	}
	return entry, nil
}

func getExtractionWindowFromDB(db *sqlx.DB, runNumber int) (WindowEntry, error) {
	query := "SELECT WindowStart, WindowEnd, SubtractLag, ShiftBits FROM ExtractionWindows WHERE MinRun <= %d and MaxRun >= %d"
	query = fmt.Sprintf(query, runNumber, runNumber)

	if configuration.Verbosity > 0 {
		logger.Info("Reading extraction window from database", "database")
	}
	if configuration.Verbosity > 2 {
		message := fmt.Sprintf("Query: %s", query)
		logger.Info(message, "database")
	}

	rows, err := db.Queryx(query)
	if err != nil {
		errMessage := fmt.Errorf("error querying database: %w", err)
		return WindowEntry{}, errMessage
	}

	found := false
	entry := WindowEntry{}
	for rows.Next() {
		err := rows.StructScan(&entry)
		if err != nil {
			errMessage := fmt.Errorf("error scanning DB row: %w", err)
			return WindowEntry{}, errMessage
		}
		found = true
	}
	if !found {
		return WindowEntry{}, fmt.Errorf("no extraction window stored for run %d", runNumber)
	}
	return entry, nil
}
