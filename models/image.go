package models

// FallbackImageURL is the placeholder avatar stored whenever a submitted
// image URL cannot be verified.
const FallbackImageURL = "https://tmdstudios.files.wordpress.com/2022/01/blank_profile.png"
