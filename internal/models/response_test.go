package models

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewResponse(t *testing.T) {
	testCode := http.StatusCreated
	testData := map[string]string{"key": "value"}
	testText := "Resource Created"

	currentTimeBeforeCall := time.Now().UnixNano() / int64(time.Millisecond)
	response := NewResponse(testCode, testData, testText)
	currentTimeAfterCall := time.Now().UnixNano() / int64(time.Millisecond)

	assert.Equal(t, testCode, response.Code, "Response code should match input")
	assert.Equal(t, testData, response.Data, "Response data should match input")
	assert.Equal(t, testText, response.Text, "Response text should match input")
	assert.Equal(t, 2, response.Version, "Response version should be 2")
	assert.GreaterOrEqual(t, response.CurrentTime, currentTimeBeforeCall, "Response current time should be after or equal to time before call")
	assert.LessOrEqual(t, response.CurrentTime, currentTimeAfterCall, "Response current time should be before or equal to time after call")
}

func TestNewOKResponse(t *testing.T) {
	testData := map[string]string{"status": "all good"}

	response := NewOKResponse(testData)

	assert.Equal(t, http.StatusOK, response.Code, "Response code should be StatusOK")
	assert.Equal(t, "OK", response.Text, "Response text should be 'OK'")
	assert.Equal(t, testData, response.Data, "Response data should match input")
	assert.Equal(t, 2, response.Version, "Response version should be 2")
	assert.InDelta(t, time.Now().UnixNano()/int64(time.Millisecond), response.CurrentTime, 100, "Response current time should be recent")
}

func TestNewEntryResponse(t *testing.T) {
	entry := TripPlanEntry{Summary: "no itineraries found"}

	response := NewEntryResponse(entry, map[string]interface{}{})

	assert.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, "OK", response.Text)
	assert.Equal(t, 2, response.Version)

	jsonData, err := json.Marshal(response)
	assert.NoError(t, err)
	assert.Contains(t, string(jsonData), `"entry"`)
	assert.Contains(t, string(jsonData), `"references"`)
	assert.Contains(t, string(jsonData), "no itineraries found")
}

func TestResponseModelJSON(t *testing.T) {
	response := ResponseModel{
		Code:        http.StatusOK,
		CurrentTime: 1746324484528,
		Data:        map[string]string{"test": "data"},
		Text:        "Test Message",
		Version:     2,
	}

	jsonData, err := json.Marshal(response)
	if err != nil {
		t.Fatalf("Failed to marshal ResponseModel to JSON: %v", err)
	}

	var unmarshaledResponse ResponseModel
	err = json.Unmarshal(jsonData, &unmarshaledResponse)
	if err != nil {
		t.Fatalf("Failed to unmarshal JSON to ResponseModel: %v", err)
	}

	assert.Equal(t, response.Code, unmarshaledResponse.Code)
	assert.Equal(t, response.CurrentTime, unmarshaledResponse.CurrentTime)
	assert.Equal(t, response.Text, unmarshaledResponse.Text)
	assert.Equal(t, response.Version, unmarshaledResponse.Version)

	responseData, ok := unmarshaledResponse.Data.(map[string]interface{})
	if assert.True(t, ok, "unmarshaled response data should be a map") {
		assert.Equal(t, "data", responseData["test"])
	}
}
