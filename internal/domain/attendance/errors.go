package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAlreadyRecorded    = errors.New("attendance already recorded for this employee and date")
)

// Operator-facing mismatch reasons, surfaced verbatim in the import report.
const (
	ReasonEmployeeNotFound  = "Karyawan tidak ditemukan di database."
	ReasonEmployeeAmbiguous = "Nama karyawan cocok dengan lebih dari satu karyawan."
	ReasonAlreadyRecorded   = "Kehadiran untuk tanggal ini sudah tercatat."
	ReasonAbsenceRecorded   = "Absensi untuk tanggal ini sudah tercatat."
)
