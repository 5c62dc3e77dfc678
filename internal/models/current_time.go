package models

import "time"

// CurrentTimeModel is the entry payload of the current-time endpoint.
type CurrentTimeModel struct {
	ReadableTime string `json:"readableTime"`
	Time         int64  `json:"time"`
}

// CurrentTimeData pairs the time entry with an empty reference block, the
// shape every list/entry response in this API shares.
type CurrentTimeData struct {
	Entry      CurrentTimeModel `json:"entry"`
	References ReferencesModel  `json:"references"`
}

// NewCurrentTimeData renders t as both RFC 3339 text and epoch milliseconds.
func NewCurrentTimeData(t time.Time) CurrentTimeData {
	timeMillis := t.UnixNano() / int64(time.Millisecond)

	return CurrentTimeData{
		Entry: CurrentTimeModel{
			ReadableTime: t.Format(time.RFC3339),
			Time:         timeMillis,
		},
		References: NewEmptyReferences(),
	}
}
