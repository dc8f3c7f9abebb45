package http

import (
	"github.com/Autum7899/My-Portfolio/internal/domain/content"
)

// Request DTOs for the admin write surface. Ids travel in the body, matching
// the client gateway contract.

type CareerEntryRequest struct {
	ID          int64  `json:"id"`
	Institution string `json:"institution" binding:"required"`
	Degree      string `json:"degree"`
	Major       string `json:"major"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

func (req *CareerEntryRequest) ToDomain() content.CareerEntry {
	return content.CareerEntry{
		ID:          req.ID,
		Institution: req.Institution,
		Degree:      req.Degree,
		Major:       req.Major,
		Date:        req.Date,
		Description: req.Description,
	}
}

type ProjectRequest struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	Demo        string   `json:"demo"`
	Repo        string   `json:"repo"`
}

func (req *ProjectRequest) ToDomain() content.Project {
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	return content.Project{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Tags:        tags,
		Demo:        req.Demo,
		Repo:        req.Repo,
	}
}

type SkillRequest struct {
	ID       int64  `json:"id"`
	Category string `json:"category" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Logo     string `json:"logo"`
	Level    string `json:"level"`
	Invert   bool   `json:"invert"`
}

func (req *SkillRequest) ToDomain() content.CategorizedSkill {
	return content.CategorizedSkill{
		Skill: content.Skill{
			ID:     req.ID,
			Name:   req.Name,
			Logo:   req.Logo,
			Level:  req.Level,
			Invert: req.Invert,
		},
		Category: content.CategoryKey(req.Category),
	}
}

type ProfileRequest struct {
	Name         string `json:"name" binding:"required"`
	Title        string `json:"title"`
	Location     string `json:"location"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profileImage"`
	Email        string `json:"email"`
	Socials      struct {
		GitHub   string `json:"github"`
		LinkedIn string `json:"linkedin"`
		Twitter  string `json:"twitter"`
		Facebook string `json:"facebook"`
	} `json:"socials"`
}

func (req *ProfileRequest) ToDomain() content.Profile {
	return content.Profile{
		Name:         req.Name,
		Title:        req.Title,
		Location:     req.Location,
		Bio:          req.Bio,
		ProfileImage: req.ProfileImage,
		Email:        req.Email,
		Socials: content.SocialLinks{
			GitHub:   req.Socials.GitHub,
			LinkedIn: req.Socials.LinkedIn,
			Twitter:  req.Socials.Twitter,
			Facebook: req.Socials.Facebook,
		},
	}
}

type DeleteRequest struct {
	ID int64 `json:"id" binding:"required"`
}

type MessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message" binding:"required"`
}
