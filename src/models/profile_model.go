package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Profile struct {
	Id             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	User           primitive.ObjectID `json:"user" bson:"user"`
	Company        string             `json:"company,omitempty" bson:"company,omitempty"`
	Website        string             `json:"website,omitempty" bson:"website,omitempty"`
	Location       string             `json:"location,omitempty" bson:"location,omitempty"`
	Status         string             `json:"status" bson:"status"`
	Skills         []string           `json:"skills" bson:"skills"`
	Bio            string             `json:"bio,omitempty" bson:"bio,omitempty"`
	GithubUsername string             `json:"githubusername,omitempty" bson:"githubusername,omitempty"`
	Experience     []Experience       `json:"experience" bson:"experience"`
	Education      []Education        `json:"education" bson:"education"`
	Social         Social             `json:"social" bson:"social"`
	Date           time.Time          `json:"date" bson:"date"`
}

type Social struct {
	Youtube   string `json:"youtube,omitempty" bson:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty" bson:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty" bson:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty" bson:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty" bson:"instagram,omitempty"`
}

type Experience struct {
	Id          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Company     string             `json:"company" bson:"company"`
	Location    string             `json:"location,omitempty" bson:"location,omitempty"`
	From        time.Time          `json:"from" bson:"from"`
	To          time.Time          `json:"to,omitempty" bson:"to,omitempty"`
	Current     bool               `json:"current" bson:"current"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
}

type Education struct {
	Id           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	School       string             `json:"school" bson:"school"`
	Degree       string             `json:"degree" bson:"degree"`
	FieldOfStudy string             `json:"fieldofstudy" bson:"fieldofstudy"`
	From         time.Time          `json:"from" bson:"from"`
	To           time.Time          `json:"to,omitempty" bson:"to,omitempty"`
	Current      bool               `json:"current" bson:"current"`
	Description  string             `json:"description,omitempty" bson:"description,omitempty"`
}

// ProfileDto is a profile with its owner resolved to the public user projection
type ProfileDto struct {
	Profile
	User UserDto `json:"user"`
}

// ProfileInput is the create/update request body. Status and skills are
// mandatory on every submission; everything else is copied only when present.
type ProfileInput struct {
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	Status         string `json:"status" validate:"required"`
	GithubUsername string `json:"githubusername"`
	Skills         string `json:"skills" validate:"required"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

// Fields builds the sparse update document: only fields present in the input
// are set, skills are normalized, and the social links form a nested object.
func (in *ProfileInput) Fields() bson.M {
	fields := bson.M{}
	if in.Company != "" {
		fields["company"] = in.Company
	}
	if in.Website != "" {
		fields["website"] = in.Website
	}
	if in.Location != "" {
		fields["location"] = in.Location
	}
	if in.Bio != "" {
		fields["bio"] = in.Bio
	}
	if in.Status != "" {
		fields["status"] = in.Status
	}
	if in.GithubUsername != "" {
		fields["githubusername"] = in.GithubUsername
	}
	if in.Skills != "" {
		fields["skills"] = ParseSkills(in.Skills)
	}

	social := bson.M{}
	if in.Youtube != "" {
		social["youtube"] = in.Youtube
	}
	if in.Twitter != "" {
		social["twitter"] = in.Twitter
	}
	if in.Facebook != "" {
		social["facebook"] = in.Facebook
	}
	if in.Linkedin != "" {
		social["linkedin"] = in.Linkedin
	}
	if in.Instagram != "" {
		social["instagram"] = in.Instagram
	}
	fields["social"] = social

	return fields
}

// ParseSkills splits a comma-delimited skills string and trims each entry
func ParseSkills(skills string) []string {
	parts := strings.Split(skills, ",")
	parsed := make([]string, len(parts))
	for i, part := range parts {
		parsed[i] = strings.TrimSpace(part)
	}
	return parsed
}

type ExperienceInput struct {
	Title       string    `json:"title" validate:"required"`
	Company     string    `json:"company" validate:"required"`
	Location    string    `json:"location"`
	From        time.Time `json:"from" validate:"required"`
	To          time.Time `json:"to"`
	Current     bool      `json:"current"`
	Description string    `json:"description"`
}

// Entry materializes the input as an embedded experience entry with its own id
func (in *ExperienceInput) Entry() Experience {
	return Experience{
		Id:          primitive.NewObjectID(),
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	}
}

type EducationInput struct {
	School       string    `json:"school" validate:"required"`
	Degree       string    `json:"degree" validate:"required"`
	FieldOfStudy string    `json:"fieldofstudy" validate:"required"`
	From         time.Time `json:"from" validate:"required"`
	To           time.Time `json:"to"`
	Current      bool      `json:"current"`
	Description  string    `json:"description"`
}

func (in *EducationInput) Entry() Education {
	return Education{
		Id:           primitive.NewObjectID(),
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         in.From,
		To:           in.To,
		Current:      in.Current,
		Description:  in.Description,
	}
}

// ExperienceByID returns the experience entry with the given id, if any
func (p *Profile) ExperienceByID(expID primitive.ObjectID) (Experience, bool) {
	for _, exp := range p.Experience {
		if exp.Id == expID {
			return exp, true
		}
	}
	return Experience{}, false
}

// EducationByID returns the education entry with the given id, if any
func (p *Profile) EducationByID(eduID primitive.ObjectID) (Education, bool) {
	for _, edu := range p.Education {
		if edu.Id == eduID {
			return edu, true
		}
	}
	return Education{}, false
}
