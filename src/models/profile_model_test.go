package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseSkills(t *testing.T) {
	assert.Equal(t, []string{"node", "express", "mongo"}, ParseSkills("node, express , mongo"))
	assert.Equal(t, []string{"go"}, ParseSkills("go"))
	assert.Equal(t, []string{"go", "mongodb"}, ParseSkills(" go ,mongodb"))
}

func TestProfileInputFieldsSparse(t *testing.T) {
	input := ProfileInput{
		Status:  "Developer",
		Skills:  "node, express , mongo",
		Company: "Acme",
		Twitter: "https://twitter.com/acme",
	}

	fields := input.Fields()

	assert.Equal(t, "Developer", fields["status"])
	assert.Equal(t, []string{"node", "express", "mongo"}, fields["skills"])
	assert.Equal(t, "Acme", fields["company"])

	// absent fields must not appear in the update at all
	_, hasWebsite := fields["website"]
	assert.False(t, hasWebsite)
	_, hasBio := fields["bio"]
	assert.False(t, hasBio)

	social, ok := fields["social"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "https://twitter.com/acme", social["twitter"])
	_, hasYoutube := social["youtube"]
	assert.False(t, hasYoutube)
}

func TestProfileInputFieldsUpdateOverwrites(t *testing.T) {
	first := ProfileInput{Status: "Developer", Skills: "go", Location: "Berlin"}
	second := ProfileInput{Status: "Senior Developer", Skills: "go, mongodb"}

	// simulate create-then-update: the second submission overwrites what it
	// carries and leaves the rest untouched
	doc := bson.M{}
	for key, value := range first.Fields() {
		doc[key] = value
	}
	for key, value := range second.Fields() {
		doc[key] = value
	}

	assert.Equal(t, "Senior Developer", doc["status"])
	assert.Equal(t, []string{"go", "mongodb"}, doc["skills"])
	assert.Equal(t, "Berlin", doc["location"])
}

func TestExperienceEntryAssignsID(t *testing.T) {
	input := ExperienceInput{
		Title:   "Engineer",
		Company: "Acme",
		From:    time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		Current: true,
	}

	entry := input.Entry()

	assert.False(t, entry.Id.IsZero())
	assert.Equal(t, "Engineer", entry.Title)
	assert.Equal(t, "Acme", entry.Company)
	assert.True(t, entry.Current)
}

func TestExperienceByID(t *testing.T) {
	exp := Experience{Id: primitive.NewObjectID(), Title: "Engineer", Company: "Acme"}
	profile := Profile{
		User:       primitive.NewObjectID(),
		Status:     "Developer",
		Skills:     []string{"go"},
		Experience: []Experience{exp},
	}

	found, ok := profile.ExperienceByID(exp.Id)
	require.True(t, ok)
	assert.Equal(t, exp.Id, found.Id)

	// an unmatched id must not resolve; the list stays intact
	_, ok = profile.ExperienceByID(primitive.NewObjectID())
	assert.False(t, ok)
	assert.Len(t, profile.Experience, 1)
}

func TestEducationByID(t *testing.T) {
	edu := Education{
		Id:           primitive.NewObjectID(),
		School:       "MIT",
		Degree:       "BSc",
		FieldOfStudy: "CS",
	}
	profile := Profile{
		User:      primitive.NewObjectID(),
		Status:    "Student",
		Skills:    []string{"go"},
		Education: []Education{edu},
	}

	found, ok := profile.EducationByID(edu.Id)
	require.True(t, ok)
	assert.Equal(t, "MIT", found.School)

	_, ok = profile.EducationByID(primitive.NewObjectID())
	assert.False(t, ok)
	assert.Len(t, profile.Education, 1)
}

func TestEducationEntryPrependOrder(t *testing.T) {
	older := EducationInput{School: "A", Degree: "BSc", FieldOfStudy: "CS", From: time.Date(2015, 9, 1, 0, 0, 0, 0, time.UTC)}
	newer := EducationInput{School: "B", Degree: "MSc", FieldOfStudy: "CS", From: time.Date(2019, 9, 1, 0, 0, 0, 0, time.UTC)}

	profile := Profile{Education: []Education{}}
	profile.Education = append([]Education{older.Entry()}, profile.Education...)
	profile.Education = append([]Education{newer.Entry()}, profile.Education...)

	require.Len(t, profile.Education, 2)
	assert.Equal(t, "B", profile.Education[0].School)
	assert.Equal(t, "A", profile.Education[1].School)
}
