// internal/places/schema.go
package places

import "dental-site/internal/common/validation"

// detailsSchema constrains the envelope and the fields we read from "result".
// Unknown fields are allowed; wrong types are not.
const detailsSchema = `{
  "type": "object",
  "required": ["status"],
  "properties": {
    "status": {"type": "string"},
    "error_message": {"type": "string"},
    "result": {
      "type": "object",
      "properties": {
        "name": {"type": "string"},
        "rating": {"type": "number"},
        "user_ratings_total": {"type": "integer"},
        "formatted_address": {"type": "string"},
        "international_phone_number": {"type": "string"},
        "formatted_phone_number": {"type": "string"},
        "website": {"type": "string"},
        "url": {"type": "string"},
        "reviews": {
          "type": "array",
          "items": {
            "type": "object",
            "properties": {
              "author_name": {"type": "string"},
              "rating": {"type": "number"},
              "text": {"type": "string"},
              "relative_time_description": {"type": "string"}
            }
          }
        },
        "photos": {
          "type": "array",
          "items": {
            "type": "object",
            "properties": {"photo_reference": {"type": "string"}}
          }
        },
        "opening_hours": {
          "type": "object",
          "properties": {
            "weekday_text": {"type": "array", "items": {"type": "string"}}
          }
        },
        "geometry": {
          "type": "object",
          "properties": {
            "location": {
              "type": "object",
              "required": ["lat", "lng"],
              "properties": {
                "lat": {"type": "number"},
                "lng": {"type": "number"}
              }
            }
          }
        }
      }
    }
  }
}`

var detailsValidator = validation.MustCompile(detailsSchema)
